package service

// ChangeNotifier receives an event after every successful mutation.
type ChangeNotifier interface {
	Notify(entity, action string, id uint)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string, uint) {}

func notifierOrNop(n ChangeNotifier) ChangeNotifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}

// Notifiers fans one event out to several notifiers in order.
type Notifiers []ChangeNotifier

func (ns Notifiers) Notify(entity, action string, id uint) {
	for _, n := range ns {
		if n != nil {
			n.Notify(entity, action, id)
		}
	}
}
