package ports

// ChangeNotifier fans a store mutation out to subscribed observers.
// Observers re-read state themselves, so Notify carries no payload.
type ChangeNotifier interface {
	Notify()
}
