package page

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/colombiamoda/internal/section"
)

var (
	// ErrInvalidItem marks an image-bearing item missing its image or title.
	ErrInvalidItem = errors.New("invalid section item")
	// ErrEmptyText marks a rich text block without body text.
	ErrEmptyText = errors.New("rich text body is empty")
)

// Validate checks the literal landing page content. Templates never check
// their props, so this runs once at startup.
func Validate() error {
	return validateContent(landingContent())
}

func validateContent(c content) error {
	var errs []error

	errs = append(errs, validateRichText("intro", c.Intro))
	for i, item := range c.Carousel {
		errs = append(errs, validateImageItem(fmt.Sprintf("carousel[%d]", i), item.Image, item.Title))
	}
	for i, item := range c.Featured {
		errs = append(errs, validateImageItem(fmt.Sprintf("featured[%d]", i), item.Image, item.Title))
	}
	for i, item := range c.Split {
		errs = append(errs, validateImageItem(fmt.Sprintf("split[%d]", i), item.Image, item.Title))
	}
	errs = append(errs, validateRichText("closing", c.Closing))
	for i, item := range c.Collections {
		errs = append(errs, validateImageItem(fmt.Sprintf("collections[%d]", i), item.Image, item.Title))
	}

	return errors.Join(errs...)
}

func validateRichText(name string, props section.RichTextProps) error {
	if strings.TrimSpace(props.Text) == "" {
		return fmt.Errorf("%s: %w", name, ErrEmptyText)
	}
	return nil
}

func validateImageItem(name, image, title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%s: missing title: %w", name, ErrInvalidItem)
	}
	if strings.TrimSpace(image) == "" {
		return fmt.Errorf("%s: missing image: %w", name, ErrInvalidItem)
	}
	parsed, err := url.Parse(image)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "https" && parsed.Scheme != "http") {
		return fmt.Errorf("%s: image %q is not an absolute http(s) URL: %w", name, image, ErrInvalidItem)
	}
	return nil
}
