package drive

// EntityCount is the number of cars driven by an Updater.
const EntityCount = 2

// Updater owns the held keys and both car states. It is not safe for
// concurrent use; the host delivers events from a single loop.
type Updater struct {
	held     KeySet
	states   [EntityCount]EntityState
	bindings [EntityCount]Binding
	refresh  Refresh
}

// NewUpdater returns an Updater with both cars at the origin, the first
// driven by WASD and the second by the arrow keys.
func NewUpdater() *Updater {
	return &Updater{
		held:     NewKeySet(),
		bindings: [EntityCount]Binding{WASD, Arrows},
	}
}

// OnKeyDown records key as held, recomputes both cars from the full held set
// and requests one refresh. It reports whether key is directional, in which
// case the host must not handle it.
func (u *Updater) OnKeyDown(key Key) bool {
	u.held.Add(key)
	for i := range u.states {
		u.states[i] = Step(u.states[i], u.held, u.bindings[i])
	}
	u.refresh.Request()
	return IsDirectional(key)
}

// OnKeyUp forgets key. State is left as last computed.
func (u *Updater) OnKeyUp(key Key) {
	u.held.Remove(key)
}

// Render writes each car's state to the target at the same index. Nil
// targets are skipped and targets beyond EntityCount are ignored.
func (u *Updater) Render(targets ...Target) {
	for i, t := range targets {
		if i >= EntityCount {
			return
		}
		if t == nil {
			continue
		}
		t.SetTransform(u.states[i].Transform())
	}
}

// Flush renders once if a refresh is pending and reports whether it did.
// Hosts call it once per display cycle.
func (u *Updater) Flush(targets ...Target) bool {
	if !u.refresh.Drain() {
		return false
	}
	u.Render(targets...)
	return true
}

// RefreshPending reports whether a refresh is waiting for the next Flush.
func (u *Updater) RefreshPending() bool {
	return u.refresh.Pending()
}

// State returns the state of car i. It panics if i is out of range.
func (u *Updater) State(i int) EntityState {
	return u.states[i]
}

// Held returns a copy of the held keys.
func (u *Updater) Held() KeySet {
	return u.held.Clone()
}
