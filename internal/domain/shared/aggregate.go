package shared

// AggregateRoot is implemented by entities that raise domain events
type AggregateRoot interface {
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot adds a version counter and pending domain events.
//
// Version is bumped by every state change. Repositories that write a
// partial update compare the stored version against ExpectedVersion, so a
// concurrent writer that got there first makes the save fail with
// ErrConcurrencyConflict.
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`

	loaded       int
	domainEvents []DomainEvent
}

// NewBaseAggregateRoot returns an aggregate at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// IncrementVersion records one more change. The first call remembers the
// version the aggregate was loaded at.
func (a *BaseAggregateRoot) IncrementVersion() {
	if a.loaded == 0 {
		a.loaded = a.Version
	}
	a.Version++
}

// ExpectedVersion is the version the row must still have for a save to win
func (a *BaseAggregateRoot) ExpectedVersion() int {
	if a.loaded == 0 {
		return a.Version
	}
	return a.loaded
}

func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}
