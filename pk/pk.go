package pk

import "github.com/google/uuid"

// PK uniquely identifies a generated entity.
type PK uuid.UUID

func New() PK { return PK(uuid.New()) }

func (k PK) String() string { return uuid.UUID(k).String() }
