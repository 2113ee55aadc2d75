// Package service implements the business logic: signup/login and token
// issuance, posts and comments with response-time population, and the
// per-user cart against the static catalog.
package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/config"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/repository"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/utils/email"
)

// Service handles business logic
type Service struct {
	store   repository.Store
	carts   *repository.CartStore
	catalog *repository.Catalog
	mail    *email.Sender // nil when SMTP is not configured
	log     *logrus.Logger
	config  *config.Config
}

// NewService initializes a new service
func NewService(store repository.Store, carts *repository.CartStore, catalog *repository.Catalog,
	mail *email.Sender, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		store:   store,
		carts:   carts,
		catalog: catalog,
		mail:    mail,
		log:     log,
		config:  cfg,
	}
}

// Stats is a snapshot of stored entity counts for the usage report.
type Stats struct {
	Users    int
	Posts    int
	Comments int
}

// Stats reports current entity counts.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	users, posts, comments, err := s.store.Counts(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to collect stats: %w", err)
	}
	return Stats{Users: users, Posts: posts, Comments: comments}, nil
}
