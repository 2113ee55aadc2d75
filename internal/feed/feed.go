// Package feed renders the blog's posts as an RSS 2.0 document.
package feed

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/models"
)

// Build renders posts (already ordered newest first) into an RSS 2.0
// document. baseURL is the public root of the service, used for links.
func Build(posts []*models.PostView, baseURL string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText("Drobo Blog")
	channel.CreateElement("link").SetText(baseURL)
	channel.CreateElement("description").SetText("Latest posts")
	if len(posts) > 0 {
		channel.CreateElement("lastBuildDate").SetText(posts[0].CreatedAt.Format(time.RFC1123Z))
	}

	for _, post := range posts {
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(post.Title)
		item.CreateElement("link").SetText(fmt.Sprintf("%s/posts/%s", baseURL, post.ID))
		item.CreateElement("guid").SetText(post.ID)
		item.CreateElement("description").SetText(post.Content)
		if post.Author != nil {
			item.CreateElement("author").SetText(post.Author.Username)
		}
		item.CreateElement("pubDate").SetText(post.CreatedAt.Format(time.RFC1123Z))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render feed: %w", err)
	}
	return out, nil
}
