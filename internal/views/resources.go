package views

import (
	"net/url"

	"safeguard/internal/logger"
	"safeguard/internal/models"
	"safeguard/internal/navigation"
	"safeguard/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ResourcesView lists resource links by category. Activating a link hands
// it to the platform's default handler.
type ResourcesView struct {
	page
	opener URLOpener
	links  []*widget.Button
	back   *widget.Button
}

func NewResourcesView(nav navigation.Navigator, categories []models.ResourceCategory, opener URLOpener, log logger.Logger) *ResourcesView {
	v := &ResourcesView{
		page:   newPage(navigation.Resources, nav, log),
		opener: opener,
	}

	list := container.NewVBox()
	for _, category := range categories {
		list.Add(widget.NewLabelWithStyle(category.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

		for _, link := range category.Links {
			target, ok := parseLink(link)
			if !ok {
				list.Add(components.NewParagraph(link))
				continue
			}

			button := widget.NewButton(link, func() { v.open(target) })
			button.Importance = widget.LowImportance
			button.Alignment = widget.ButtonAlignLeading
			v.links = append(v.links, button)
			list.Add(button)
		}
	}
	v.back = v.backButton()

	v.mount(container.NewBorder(
		components.NewTitle("Resource Center"),
		container.NewCenter(v.back),
		nil, nil,
		container.NewVScroll(list),
	))
	return v
}

// parseLink accepts absolute http(s) URLs only.
func parseLink(link string) (*url.URL, bool) {
	u, err := url.ParseRequestURI(link)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, false
	}
	return u, true
}

func (v *ResourcesView) open(target *url.URL) {
	if !v.Active() {
		return
	}
	if err := v.opener.OpenURL(target); err != nil {
		v.logger.Error("ResourcesView", err, map[string]interface{}{
			"url": target.String(),
		})
		return
	}
	v.logger.Debug("ResourcesView", "link opened", map[string]interface{}{
		"url": target.String(),
	})
}

// LinkButtons are the activatable links in display order.
func (v *ResourcesView) LinkButtons() []*widget.Button {
	return v.links
}

func (v *ResourcesView) Dispose() {
	v.teardown(func() {
		v.links = nil
	})
}
