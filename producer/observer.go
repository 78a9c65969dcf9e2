package producer

// Observer is notified about the steps of a generation run. Observers cannot
// influence the result.
type Observer interface {
	// UniqueCheckFailed is called when uniqueness is disabled. retryLimit is
	// the exhausted retry limit, or zero when the value space is too small
	// for the requested number of items.
	UniqueCheckFailed(kind Kind, retryLimit int)

	// The After callbacks fire once per candidate in this order, whether or
	// not a map hook, compare hook or uniqueness is configured. Without a map
	// hook value is passed through unchanged. ok is the verdict so far: the
	// compare result (true without a compare hook), and for AfterUnique
	// additionally false for a duplicate when uniqueness is enabled.
	AfterItemCreated(value any, index int, kind Kind)
	AfterMap(value any, index int, kind Kind)
	AfterCompare(value any, index int, kind Kind, ok bool)
	AfterUnique(value any, index int, kind Kind, ok bool)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) UniqueCheckFailed(Kind, int) {}
func (NopObserver) AfterItemCreated(any, int, Kind) {}
func (NopObserver) AfterMap(any, int, Kind) {}
func (NopObserver) AfterCompare(any, int, Kind, bool) {}
func (NopObserver) AfterUnique(any, int, Kind, bool) {}

// ObserverFuncs is an Observer built from optional functions.
type ObserverFuncs struct {
	OnUniqueCheckFailed func(kind Kind, retryLimit int)
	OnItemCreated       func(value any, index int, kind Kind)
	OnMap               func(value any, index int, kind Kind)
	OnCompare           func(value any, index int, kind Kind, ok bool)
	OnUnique            func(value any, index int, kind Kind, ok bool)
}

// statically ensure that the observers implement Observer
var (
	_ Observer = NopObserver{}
	_ Observer = ObserverFuncs{}
)

func (o ObserverFuncs) UniqueCheckFailed(kind Kind, retryLimit int) {
	if o.OnUniqueCheckFailed != nil {
		o.OnUniqueCheckFailed(kind, retryLimit)
	}
}

func (o ObserverFuncs) AfterItemCreated(value any, index int, kind Kind) {
	if o.OnItemCreated != nil {
		o.OnItemCreated(value, index, kind)
	}
}

func (o ObserverFuncs) AfterMap(value any, index int, kind Kind) {
	if o.OnMap != nil {
		o.OnMap(value, index, kind)
	}
}

func (o ObserverFuncs) AfterCompare(value any, index int, kind Kind, ok bool) {
	if o.OnCompare != nil {
		o.OnCompare(value, index, kind, ok)
	}
}

func (o ObserverFuncs) AfterUnique(value any, index int, kind Kind, ok bool) {
	if o.OnUnique != nil {
		o.OnUnique(value, index, kind, ok)
	}
}
