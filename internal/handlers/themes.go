package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/codebuildervaibhav/voice2slide/internal/deck"
)

// ThemesHandler lists the built-in deck themes
type ThemesHandler struct{}

// NewThemesHandler creates a new themes handler
func NewThemesHandler() *ThemesHandler {
	return &ThemesHandler{}
}

// Handle returns the theme catalog and the default theme id
func (h *ThemesHandler) Handle(c *fiber.Ctx) error {
	themes := deck.Themes()
	list := make([]fiber.Map, 0, len(themes))
	for _, t := range themes {
		list = append(list, fiber.Map{
			"id":     t.ID,
			"name":   t.Name,
			"colors": t.Colors(),
		})
	}

	return c.JSON(fiber.Map{
		"themes":  list,
		"default": deck.DefaultThemeID,
	})
}
