package pricing

import (
	"errors"

	"zoo-ticketing/internal/module/ticket/models/entity"
)

var ErrUnknownCategory = errors.New("unknown ticket category")

// categoryOrder is the display order for line items and category listings.
var categoryOrder = []entity.Category{
	entity.CategoryAdult,
	entity.CategoryChild,
	entity.CategorySenior,
	entity.CategoryFamily,
}

// Schedule is an immutable price and color table. Pipelines receive it by
// injection, so tests can run against alternate price schedules.
type Schedule struct {
	prices map[entity.Category]float64
	colors map[entity.Category]string
}

func NewSchedule(prices map[entity.Category]float64, colors map[entity.Category]string) Schedule {
	p := make(map[entity.Category]float64, len(prices))
	for k, v := range prices {
		p[k] = v
	}
	c := make(map[entity.Category]string, len(colors))
	for k, v := range colors {
		c[k] = v
	}
	return Schedule{prices: p, colors: c}
}

// Default returns the production schedule: prices in CHF and the display
// color for each category.
func Default() Schedule {
	return NewSchedule(
		map[entity.Category]float64{
			entity.CategoryAdult:  30,
			entity.CategoryChild:  15,
			entity.CategorySenior: 20,
			entity.CategoryFamily: 75,
		},
		map[entity.Category]string{
			entity.CategoryAdult:  "#10B981",
			entity.CategoryChild:  "#8B5CF6",
			entity.CategorySenior: "#3B82F6",
			entity.CategoryFamily: "#EC4899",
		},
	)
}

func (s Schedule) PriceOf(category entity.Category) (float64, error) {
	price, ok := s.prices[category]
	if !ok {
		return 0, ErrUnknownCategory
	}
	return price, nil
}

// ColorOf returns the display color as a #RRGGBB hex string.
func (s Schedule) ColorOf(category entity.Category) (string, error) {
	color, ok := s.colors[category]
	if !ok {
		return "", ErrUnknownCategory
	}
	return color, nil
}

// Categories returns the priced categories in stable display order.
func (s Schedule) Categories() []entity.Category {
	out := make([]entity.Category, 0, len(s.prices))
	for _, c := range categoryOrder {
		if _, ok := s.prices[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
