package views

import (
	"context"
	"fmt"
	"strings"

	"safeguard/internal/logger"
	"safeguard/internal/models"
	"safeguard/internal/navigation"
	"safeguard/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ContactsView adds emergency contacts and lists them, optionally filtered
// by country.
type ContactsView struct {
	page
	ctx    context.Context
	window fyne.Window
	store  ContactStore

	country   *widget.Entry
	police    *widget.Entry
	fire      *widget.Entry
	ambulance *widget.Entry
	add       *widget.Button
	filter    *widget.Entry
	show      *widget.Button
	list      *fyne.Container
	rows      []string
	status    *components.StatusLine
}

func NewContactsView(ctx context.Context, nav navigation.Navigator, window fyne.Window, store ContactStore, log logger.Logger) *ContactsView {
	v := &ContactsView{
		page:   newPage(navigation.Contacts, nav, log),
		ctx:    ctx,
		window: window,
		store:  store,
	}

	v.createComponents()
	v.buildLayout()
	v.Refresh()
	return v
}

func (v *ContactsView) createComponents() {
	v.country = widget.NewEntry()
	v.country.SetPlaceHolder("Country")
	v.police = widget.NewEntry()
	v.police.SetPlaceHolder("Police")
	v.fire = widget.NewEntry()
	v.fire.SetPlaceHolder("Fire")
	v.ambulance = widget.NewEntry()
	v.ambulance.SetPlaceHolder("Ambulance")

	v.add = widget.NewButton("Add Contact", v.AddContact)
	v.add.Importance = widget.HighImportance

	v.filter = widget.NewEntry()
	v.filter.SetPlaceHolder("Filter by country")
	v.filter.OnSubmitted = func(string) { v.Refresh() }
	v.show = widget.NewButton("Show", v.Refresh)

	v.list = container.NewVBox()
	v.status = components.NewStatusLine("")
}

func (v *ContactsView) buildLayout() {
	form := container.NewVBox(
		v.country,
		container.NewGridWithColumns(3, v.police, v.fire, v.ambulance),
		v.add,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, v.show, v.filter),
	)

	v.mount(container.NewBorder(
		container.NewVBox(components.NewTitle("Emergency Contacts"), form),
		container.NewVBox(container.NewCenter(v.backButton()), v.status.GetContainer()),
		nil, nil,
		container.NewVScroll(v.list),
	))
}

// AddContact stores the contact typed into the form.
func (v *ContactsView) AddContact() {
	if !v.Active() {
		return
	}

	contact, err := v.store.Add(v.ctx, models.Contact{
		Country:   v.country.Text,
		Police:    v.police.Text,
		Fire:      v.fire.Text,
		Ambulance: v.ambulance.Text,
	})
	if err != nil {
		v.fail("add contact", err)
		return
	}

	for _, e := range []*widget.Entry{v.country, v.police, v.fire, v.ambulance} {
		e.SetText("")
	}
	v.status.SetStatus(fmt.Sprintf("Added contact for %s", contact.Country))
	v.Refresh()
}

// Refresh reloads the list using the current filter.
func (v *ContactsView) Refresh() {
	if !v.Active() {
		return
	}

	contacts, err := v.store.List(v.ctx, strings.TrimSpace(v.filter.Text))
	if err != nil {
		v.fail("list contacts", err)
		return
	}

	v.rows = v.rows[:0]
	v.list.RemoveAll()
	if len(contacts) == 0 {
		v.list.Add(widget.NewLabel("No contacts stored."))
		return
	}
	for _, c := range contacts {
		row := formatContact(c)
		v.rows = append(v.rows, row)
		v.list.Add(components.NewParagraph(row))
	}
}

func formatContact(c models.Contact) string {
	return fmt.Sprintf("%s | Police: %s | Fire: %s | Ambulance: %s",
		c.Country, orDash(c.Police), orDash(c.Fire), orDash(c.Ambulance))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (v *ContactsView) fail(action string, err error) {
	v.logger.Error("ContactsView", err, map[string]interface{}{"action": action})
	v.status.SetStatus(fmt.Sprintf("Could not %s: %v", action, err))
	if v.window != nil {
		dialog.ShowError(err, v.window)
	}
}

// Rows are the contact lines as displayed.
func (v *ContactsView) Rows() []string {
	return append([]string(nil), v.rows...)
}

func (v *ContactsView) Status() string {
	return v.status.GetStatus()
}

// Form exposes the entry widgets in order: country, police, fire, ambulance, filter.
func (v *ContactsView) Form() (country, police, fire, ambulance, filter *widget.Entry) {
	return v.country, v.police, v.fire, v.ambulance, v.filter
}

func (v *ContactsView) Dispose() {
	v.teardown(func() {
		v.filter.OnSubmitted = nil
		v.rows = nil
	})
}
