package models

// Entity carries the identity and audit columns shared by every persisted aggregate.
// An ID of zero means the entity has not been stored yet.
type Entity struct {
	ID           int64  `db:"id"`
	CreatedBy    string `db:"created_by"`
	CreatedDate  int64  `db:"created_date"`
	ModifiedBy   string `db:"modified_by"`
	ModifiedDate int64  `db:"modified_date"`
}

func NewEntity(creator string, now int64) Entity {
	return Entity{
		CreatedBy:    creator,
		CreatedDate:  now,
		ModifiedBy:   creator,
		ModifiedDate: now,
	}
}

func (e *Entity) Touch(modifier string, now int64) {
	if e.CreatedDate == 0 {
		e.CreatedBy = modifier
		e.CreatedDate = now
	}
	e.ModifiedBy = modifier
	e.ModifiedDate = now
}

func (e Entity) IsPersisted() bool {
	return e.ID > 0
}
