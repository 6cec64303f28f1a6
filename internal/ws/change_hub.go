package ws

import "time"

// ChangeEvent tells dashboards that a collection changed and should be re-read.
type ChangeEvent struct {
	Type   string `json:"type"`
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     uint   `json:"id"`
	At     int64  `json:"at"`
}

// ChangeHub streams mutation events to connected admin dashboards.
type ChangeHub struct {
	*Hub
	now func() time.Time
}

func NewChangeHub() *ChangeHub {
	return &ChangeHub{Hub: NewHub(), now: time.Now}
}

// Notify implements service.ChangeNotifier.
func (h *ChangeHub) Notify(entity, action string, id uint) {
	h.BroadcastAll(ChangeEvent{
		Type:   "change",
		Entity: entity,
		Action: action,
		ID:     id,
		At:     h.now().Unix(),
	})
}
