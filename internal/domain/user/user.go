package user

import "time"

// SlotCount is the fixed size of every user's cart. Slot indices run from 0
// to SlotCount-1 and every index always has a defined quantity.
const SlotCount = 100

// Cart maps a slot index to a non-negative quantity
type Cart map[int]int

// NewCart returns a cart with every slot present and zeroed
func NewCart() Cart {
	cart := make(Cart, SlotCount)
	for i := 0; i < SlotCount; i++ {
		cart[i] = 0
	}
	return cart
}

// ValidSlot reports whether slot is a usable cart index
func ValidSlot(slot int) bool {
	return slot >= 0 && slot < SlotCount
}

// Clone returns an independent copy of the cart
func (c Cart) Clone() Cart {
	copied := make(Cart, len(c))
	for slot, qty := range c {
		copied[slot] = qty
	}
	return copied
}

// User is a stored credential record. Identity (the email) is the unique key.
type User struct {
	Identity  string    `json:"email"`
	Name      string    `json:"name"`
	Secret    string    `json:"-"`
	Cart      Cart      `json:"cartData"`
	CreatedAt time.Time `json:"date"`
}

// New creates a user record with a freshly zeroed cart
func New(identity, name, secret string) *User {
	return &User{
		Identity:  identity,
		Name:      name,
		Secret:    secret,
		Cart:      NewCart(),
		CreatedAt: time.Now(),
	}
}
