package views

import (
	"safeguard/internal/logger"
	"safeguard/internal/models"
	"safeguard/internal/navigation"
	"safeguard/internal/views/components"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// AlertsView lists disaster alerts in file order.
type AlertsView struct {
	page
	alerts []models.Alert
	labels []*widget.Label
	back   *widget.Button
}

func NewAlertsView(nav navigation.Navigator, alerts []models.Alert, log logger.Logger) *AlertsView {
	v := &AlertsView{
		page:   newPage(navigation.Alerts, nav, log),
		alerts: alerts,
	}

	list := container.NewVBox()
	for _, alert := range alerts {
		label := components.NewParagraph(string(alert))
		label.Importance = widget.DangerImportance
		v.labels = append(v.labels, label)
		list.Add(label)
	}
	v.back = v.backButton()

	v.mount(container.NewBorder(
		components.NewTitle("Disaster Alerts"),
		container.NewCenter(v.back),
		nil, nil,
		container.NewVScroll(list),
	))

	log.Debug("AlertsView", "mounted", map[string]interface{}{"alerts": len(alerts)})
	return v
}

// Texts returns the alert lines as displayed.
func (v *AlertsView) Texts() []string {
	out := make([]string, len(v.labels))
	for i, l := range v.labels {
		out[i] = l.Text
	}
	return out
}

func (v *AlertsView) BackButton() *widget.Button {
	return v.back
}

func (v *AlertsView) Dispose() {
	v.teardown(func() {
		v.labels = nil
	})
}
