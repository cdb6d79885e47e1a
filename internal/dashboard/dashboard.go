// Package dashboard computes the back-office summary shown on the home screen.
package dashboard

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MikeMC777/ordenes-backoffice/internal/order"
)

const (
	monthsShown = 6
	daysShown   = 7
)

type Stats struct {
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalSalesText string          `json:"total_sales_text"`
	TotalOrders    int             `json:"total_orders"`
	TotalCustomers int             `json:"total_customers"`
	TotalProducts  int             `json:"total_products"`
	SalesByMonth   []MonthSales    `json:"sales_by_month"`
	OrdersByDay    []DayOrders     `json:"orders_by_day"`
	Status         Distribution    `json:"status"`
}

type MonthSales struct {
	Year  int             `json:"year"`
	Month string          `json:"month"`
	Sales decimal.Decimal `json:"sales"`
}

type DayOrders struct {
	Date   string `json:"date"`
	Day    string `json:"day"`
	Orders int    `json:"orders"`
}

type Distribution struct {
	NotPaid      int `json:"not_paid"`
	Paid         int `json:"paid"`
	NotDelivered int `json:"not_delivered"`
	Delivered    int `json:"delivered"`
}

// Compute aggregates orders relative to now. Monthly and daily series only
// count scheduled orders and use now's location for calendar boundaries.
func Compute(orders []order.Order, customers, products int, now time.Time) Stats {
	s := Stats{
		TotalSales:     decimal.Zero,
		TotalOrders:    len(orders),
		TotalCustomers: customers,
		TotalProducts:  products,
		SalesByMonth:   make([]MonthSales, monthsShown),
		OrdersByDay:    make([]DayOrders, daysShown),
	}

	loc := now.Location()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	for i := 0; i < monthsShown; i++ {
		m := firstOfMonth.AddDate(0, i-(monthsShown-1), 0)
		s.SalesByMonth[i] = MonthSales{Year: m.Year(), Month: m.Month().String()[:3], Sales: decimal.Zero}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	for i := 0; i < daysShown; i++ {
		d := today.AddDate(0, 0, i-(daysShown-1))
		s.OrdersByDay[i] = DayOrders{Date: d.Format(time.DateOnly), Day: d.Weekday().String()[:3]}
	}

	for _, o := range orders {
		s.TotalSales = s.TotalSales.Add(o.TotalAmount)
		switch o.PaymentStatus {
		case order.Paid:
			s.Status.Paid++
		case order.NotPaid:
			s.Status.NotPaid++
		}
		switch o.DeliveryStatus {
		case order.Delivered:
			s.Status.Delivered++
		case order.NotDelivered:
			s.Status.NotDelivered++
		}
		if o.Datetime == nil {
			continue
		}
		at := o.Datetime.In(loc)
		if i := monthsBetween(at, now); i >= 0 && i < monthsShown {
			idx := monthsShown - 1 - i
			s.SalesByMonth[idx].Sales = s.SalesByMonth[idx].Sales.Add(o.TotalAmount)
		}
		day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, loc)
		if i := int(math.Round(today.Sub(day).Hours() / 24)); !day.After(today) && i < daysShown {
			s.OrdersByDay[daysShown-1-i].Orders++
		}
	}
	s.TotalSalesText = FormatUSD(s.TotalSales)
	return s
}

// monthsBetween counts whole calendar months from a to b; negative when a is later.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount like "$1,234.50".
func FormatUSD(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	if f < 0 {
		return printer.Sprintf("-$%.2f", -f)
	}
	return printer.Sprintf("$%.2f", f)
}
