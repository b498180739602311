package rental

import (
	"strings"
	"time"
)

// Period is a calendar-date range, inclusive of both endpoints.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return Period{}, ErrEndBeforeStart
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

// Days counts whole days between the endpoints plus one, so a same-day
// rental is one day.
func (p Period) Days() int {
	return int(p.end.Sub(p.start)/(24*time.Hour)) + 1
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Quote holds the derived money amounts for a period. All values are whole
// pesos; there are no fractional currency units.
type Quote struct {
	days      int
	dailyRate int
	deposit   int
	total     int
}

func NewQuote(period Period, dailyRate, deposit int) (Quote, error) {
	if dailyRate < 0 {
		return Quote{}, ErrNegativeRate
	}
	if deposit < 0 {
		return Quote{}, ErrNegativeDeposit
	}
	days := period.Days()
	return Quote{
		days:      days,
		dailyRate: dailyRate,
		deposit:   deposit,
		total:     days * dailyRate,
	}, nil
}

func ReconstructQuote(days, dailyRate, deposit, total int) Quote {
	return Quote{days: days, dailyRate: dailyRate, deposit: deposit, total: total}
}

func (q Quote) Days() int      { return q.days }
func (q Quote) DailyRate() int { return q.dailyRate }
func (q Quote) Deposit() int   { return q.deposit }
func (q Quote) Total() int     { return q.total }

// Customer is a contact snapshot stored on the order; the rut is the only
// required field.
type Customer struct {
	name  string
	rut   string
	email string
	phone string
}

func NewCustomer(name, rut, email, phone string) (Customer, error) {
	rut = strings.TrimSpace(rut)
	if rut == "" {
		return Customer{}, ErrEmptyRut
	}
	return Customer{
		name:  strings.TrimSpace(name),
		rut:   rut,
		email: strings.TrimSpace(email),
		phone: strings.TrimSpace(phone),
	}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Rut() string   { return c.rut }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }
