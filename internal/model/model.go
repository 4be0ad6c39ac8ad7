package model

// CartKey is the store key the cart is persisted under.
const CartKey = "savannaSeaCart"

// Default safari booking values used when a booking is appended from a
// listing rather than built from the guest stepper.
const (
	DefaultSafariGuests = 2
	DefaultSafariDate   = "Oct 5"
)

type FoodLineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type SafariBooking struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Guests int     `json:"guests"`
	Date   string  `json:"date"`
}

// Cart is the persisted aggregate of pending food items and safari bookings.
//
// Food is keyed by exact name (one line per name). Safari has no uniqueness
// constraint.
type Cart struct {
	Food   []FoodLineItem  `json:"food"`
	Safari []SafariBooking `json:"safari"`
}

func NewCart() *Cart {
	return &Cart{Food: []FoodLineItem{}, Safari: []SafariBooking{}}
}

// Normalize replaces nil slices with empty ones so the cart always
// serializes as {"food":[],"safari":[]}.
func (c *Cart) Normalize() {
	if c.Food == nil {
		c.Food = []FoodLineItem{}
	}
	if c.Safari == nil {
		c.Safari = []SafariBooking{}
	}
}

func (c *Cart) IsEmpty() bool {
	return c == nil || (len(c.Food) == 0 && len(c.Safari) == 0)
}

// Clone returns a deep copy.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return NewCart()
	}
	out := &Cart{
		Food:   make([]FoodLineItem, len(c.Food)),
		Safari: make([]SafariBooking, len(c.Safari)),
	}
	copy(out.Food, c.Food)
	copy(out.Safari, c.Safari)
	return out
}

// FindFood returns the index of the food line with the exact name, or -1.
func (c *Cart) FindFood(name string) int {
	for i := range c.Food {
		if c.Food[i].Name == name {
			return i
		}
	}
	return -1
}

// AddFood merges a unit of name into the food list. An existing line keeps
// its original price and gains one unit.
func (c *Cart) AddFood(name string, price float64) FoodLineItem {
	if i := c.FindFood(name); i >= 0 {
		c.Food[i].Quantity++
		return c.Food[i]
	}
	it := FoodLineItem{Name: name, Price: price, Quantity: 1}
	c.Food = append(c.Food, it)
	return it
}

// ReplaceSafari drops every booking and keeps only b.
func (c *Cart) ReplaceSafari(b SafariBooking) {
	c.Safari = []SafariBooking{b}
}

func (c *Cart) AppendSafari(b SafariBooking) {
	c.Safari = append(c.Safari, b)
}
