package identity

import "time"

// User is an account row. Password holds the stored hash and is never
// serialized.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Age       string    `json:"age"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}
