package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/huh-boost/storefront/picker"
	"github.com/huh-boost/storefront/ui"
)

var registry *picker.Registry

// HandlePicker re-renders the picker as it stands.
func HandlePicker(c *fiber.Ctx) error {
	p, err := currentPicker(c)
	if err != nil {
		return err
	}
	return render(c, ui.PickerRoot(p.View()))
}

// HandleFeatured renders the featured grid; polled while the catalog loads.
func HandleFeatured(c *fiber.Ctx) error {
	p, err := currentPicker(c)
	if err != nil {
		return err
	}
	return render(c, ui.FeaturedGrid(p.View()))
}

func HandleToggle(c *fiber.Ctx) error {
	p, err := currentPicker(c)
	if err != nil {
		return err
	}
	p.Toggle()
	return render(c, ui.PickerRoot(p.View()))
}

// HandleSearch filters the loaded collections by q.
func HandleSearch(c *fiber.Ctx) error {
	p, err := currentPicker(c)
	if err != nil {
		return err
	}
	p.Search(c.Query("q"))
	return renderResults(c, p.View())
}

// HandleFocus re-shows results hidden by an earlier outside click.
func HandleFocus(c *fiber.Ctx) error {
	p, err := currentPicker(c)
	if err != nil {
		return err
	}
	p.Focus()
	return renderResults(c, p.View())
}

func renderResults(c *fiber.Ctx, v picker.View) error {
	return renderAll(c, ui.SearchResults(v), ui.OutsideListenerOOB(v))
}

// HandleSelect commits a collection and navigates to its page.
func HandleSelect(c *fiber.Ctx) error {
	p, err := currentPicker(c)
	if err != nil {
		return err
	}
	handle := getQueryParam(c, "handle")
	if handle == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Collection is required")
	}
	path, err := p.Select(handle)
	if errors.Is(err, picker.ErrUnknownCollection) {
		return fiber.NewError(fiber.StatusNotFound, "Collection not found")
	}
	if err != nil {
		return err
	}
	return redirect(c, path)
}

// HandleDismiss applies an interaction that landed outside the active overlay.
func HandleDismiss(c *fiber.Ctx) error {
	within, err := picker.ParseOverlay(c.FormValue("within"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	p, err := currentPicker(c)
	if err != nil {
		return err
	}
	p.Outside(within)
	v := p.View()
	if v.State.IsOpen() {
		// Only the results panel closed; the dropdown stays in the DOM.
		retarget(c, ui.SearchResultsTarget)
		return renderResults(c, v)
	}
	return render(c, ui.PickerRoot(v))
}

// HandleClose closes the dropdown and goes to the full collection list.
func HandleClose(c *fiber.Ctx) error {
	p, err := currentPicker(c)
	if err != nil {
		return err
	}
	p.CloseDropdown()
	return redirect(c, "/collections")
}

func HandleMobile(c *fiber.Ctx) error {
	p, err := currentPicker(c)
	if err != nil {
		return err
	}
	open := p.ToggleMobile()
	return renderAll(c, ui.MobileMenu(p.View()), ui.MobileToggleOOB(open))
}
