package widgets

import "math"

// Carousel tracks which slide the indicator dots highlight.
type Carousel struct {
	Count  int
	Active int
}

// Scroll derives the active slide from a scroll offset. A non-positive item
// width leaves the state untouched.
func (c *Carousel) Scroll(offset, itemWidth float64) int {
	if itemWidth <= 0 || c.Count <= 0 {
		return c.Active
	}
	i := int(math.Round(offset / itemWidth))
	if i < 0 {
		i = 0
	}
	if i > c.Count-1 {
		i = c.Count - 1
	}
	c.Active = i
	return i
}

// Dots has one entry per slide; exactly the active one is true.
func (c *Carousel) Dots() []bool {
	out := make([]bool, c.Count)
	if c.Active >= 0 && c.Active < c.Count {
		out[c.Active] = true
	}
	return out
}
