package port

import "github.com/fhuszti/uploads-ms-go/internal/db"

type UUIDGen func() db.UUID
