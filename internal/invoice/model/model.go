package model

type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (i Item) Total() float64 { return float64(i.Quantity) * i.Price }

type Invoice struct {
	ID     int     `json:"id"`
	Number string  `json:"number"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Items  []Item  `json:"items,omitempty"`
}

type CreateRequest struct {
	Number string `json:"number"`
	Date   string `json:"date"`
	Items  []Item `json:"items"`
}
