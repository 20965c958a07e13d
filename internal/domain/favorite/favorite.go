package favorite

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	CreatedAt  time.Time
}
