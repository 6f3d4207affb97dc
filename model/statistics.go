package model

import "fmt"

type Statistics struct {
	PurchasedTickets int
	TotalSeats       int
	Percentage       float64
	CurrentIncome    int
	TotalIncome      int
}

func (s Statistics) PercentageText() string {
	return fmt.Sprintf("%.2f%%", s.Percentage)
}
