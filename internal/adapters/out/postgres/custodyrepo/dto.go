// Package custodyrepo provides data transfer objects and mapping functions for
// chain-of-custody persistence. A chain row anchors the batch at its origin
// holder; event rows are append-only and keyed by the batch number with their
// ledger sequence.
package custodyrepo

import (
	"time"

	"cannacommerce/internal/core/domain/model/custody"
	"cannacommerce/internal/core/domain/model/kernel"
)

// ChainDTO represents the database structure for custody chains.
type ChainDTO struct {
	BatchNumber  string `gorm:"primaryKey;size:64"`
	OriginHolder string `gorm:"size:13"`
}

// TableName specifies the database table name for custody chains.
func (ChainDTO) TableName() string {
	return "custody_chains"
}

// EventDTO represents the database structure for custody events. The batch
// number and sequence pair is unique; rows are never updated or deleted.
type EventDTO struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	BatchNumber string `gorm:"size:64;uniqueIndex:idx_batch_seq"`
	Seq         int    `gorm:"uniqueIndex:idx_batch_seq"`
	Timestamp   time.Time
	FromHolder  *string `gorm:"size:13"`
	ToHolder    string  `gorm:"size:13"`
	EventType   int
	CorrectsSeq int
	Notes       string
}

// TableName specifies the database table name for custody events.
func (EventDTO) TableName() string {
	return "custody_events"
}

func chainFromDomain(chain *custody.Chain) ChainDTO {
	return ChainDTO{
		BatchNumber:  chain.BatchNumber(),
		OriginHolder: chain.OriginHolder().String(),
	}
}

func eventFromDomain(batchNumber string, event custody.Event) EventDTO {
	var from *string
	if gln := event.FromHolder(); gln != nil {
		raw := gln.String()
		from = &raw
	}

	return EventDTO{
		BatchNumber: batchNumber,
		Seq:         event.Seq(),
		Timestamp:   event.Timestamp(),
		FromHolder:  from,
		ToHolder:    event.ToHolder().String(),
		EventType:   int(event.Type()),
		CorrectsSeq: event.CorrectsSeq(),
		Notes:       event.Notes(),
	}
}

func eventToDomain(dto EventDTO) (custody.Event, error) {
	toHolder, err := kernel.NewGLN(dto.ToHolder)
	if err != nil {
		return custody.Event{}, err
	}

	if custody.EventType(dto.EventType) == custody.EventCorrection {
		return custody.NewCorrectionEvent(dto.Timestamp, toHolder, dto.CorrectsSeq, dto.Notes)
	}

	var from *kernel.GLN
	if dto.FromHolder != nil {
		gln, glnErr := kernel.NewGLN(*dto.FromHolder)
		if glnErr != nil {
			return custody.Event{}, glnErr
		}
		from = &gln
	}

	event, err := custody.NewEvent(dto.Timestamp, from, toHolder, custody.EventType(dto.EventType))
	if err != nil {
		return custody.Event{}, err
	}
	if dto.Notes != "" {
		event = event.WithNotes(dto.Notes)
	}

	return event, nil
}

func chainToDomain(dto ChainDTO, eventDTOs []EventDTO) (*custody.Chain, error) {
	origin, err := kernel.NewGLN(dto.OriginHolder)
	if err != nil {
		return nil, err
	}

	events := make([]custody.Event, 0, len(eventDTOs))
	for _, eventDTO := range eventDTOs {
		event, eventErr := eventToDomain(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return custody.RestoreChain(dto.BatchNumber, origin, events)
}
