package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jenyar623-ui/ascorp-leaders/internal/report"
)

// Имена листов клиентского отчета.
const (
	SheetClientHours   = "данные тзт"
	SheetClientTickets = "заявки"
	SheetClientTasks   = "задачи"
	SheetClientSLA     = "sla"
	SheetClientMass    = "массовые"
)

// ClientParser разбирает четыре по-разному устроенных листа клиентского
// отчета и сводит имена клиентов к каноническим.
type ClientParser struct {
	log       *slog.Logger
	aliases   map[string]string
	canonical map[string]string // нижний регистр → первое встреченное написание
}

// NewClientParser создает парсер с таблицей псевдонимов по умолчанию.
func NewClientParser(log *slog.Logger) *ClientParser {
	return &ClientParser{
		log:       log,
		aliases:   report.DefaultClientAliases(),
		canonical: make(map[string]string),
	}
}

// Normalize сводит имя клиента к каноническому написанию: сначала по
// карте канонических имен (без учета регистра), затем по таблице
// псевдонимов, иначе имя проходит как есть — новые клиенты, появившиеся
// только в побочном листе, допустимы.
func (p *ClientParser) Normalize(name string) string {
	key := strings.ToLower(name)
	if canon, ok := p.canonical[key]; ok {
		return canon
	}
	if alias, ok := p.aliases[key]; ok {
		return alias
	}
	return name
}

// InferMonthYears присваивает год каждому названию месяца по порядку
// следования: месяцы идут вперед, год увеличивается, когда номер месяца
// уменьшается относительно предыдущего (переход декабрь→январь без
// явных годов). До первого уменьшения действует стартовый год.
func InferMonthYears(names []string, startYear int) map[string]int {
	years := make(map[string]int, len(names))
	year := startYear
	prev := 0
	for _, n := range names {
		num := report.MonthNumber(n)
		if num != 0 && num < prev {
			year++
		}
		prev = num
		years[n] = year
	}
	return years
}

// Первый год клиентского отчета; листы годов не содержат.
const clientStartYear = 2025

// ParseHours разбирает лист "данные тзт" (часы по клиентам) и попутно
// наполняет карту канонических имен первым встреченным написанием.
func (p *ClientParser) ParseHours(g Grid) []report.ClientHours {
	var out []report.ClientHours
	for r := 1; r < g.Rows(); r++ {
		client := strings.TrimSpace(g.Cell(r, 0))
		month := normLabel(g.Cell(r, 1))
		if client == "" || month == "" {
			continue
		}
		// каноническим остается первое встреченное написание
		if key := strings.ToLower(client); p.canonical[key] == "" {
			p.canonical[key] = client
		}

		year := SafeInt(g.Cell(r, 2))
		if year == 0 {
			year = clientStartYear
		}
		team := strings.TrimSpace(g.Cell(r, 3))
		tztType := strings.TrimSpace(g.Cell(r, 4))
		if tztType == "" {
			tztType = "операционка"
		}

		out = append(out, report.ClientHours{
			Client:     client,
			Month:      month,
			MonthLabel: fmt.Sprintf("%s %d", month, year),
			Team:       team,
			Type:       tztType,
			Hours:      round2(SafeFloat(g.Cell(r, 5))),
		})
	}
	return out
}

// monthColumn — колонка сводного листа с названием месяца в шапке.
type monthColumn struct {
	Col  int
	Name string
}

// monthColumns собирает из первой строки листа колонки с названиями
// месяцев. Сводные листы различаются шагом колонок, но сам список
// месяцев всегда задает, какие колонки читать.
func monthColumns(g Grid) []monthColumn {
	var months []monthColumn
	for c := dataStartCol; c < g.Cols(); c++ {
		name := normLabel(g.Cell(0, c))
		if report.MonthNumber(name) != 0 {
			months = append(months, monthColumn{Col: c, Name: name})
		}
	}
	return months
}

// ParseTickets разбирает сводный лист "заявки" или "задачи": месяц в
// шапке, под ним пара колонок поступило/решено.
func (p *ClientParser) ParseTickets(g Grid, ticketType string) []report.ClientTickets {
	months := monthColumns(g)
	if len(months) == 0 {
		return nil
	}
	years := inferColumnYears(months)

	var out []report.ClientTickets
	for r := 2; r < g.Rows(); r++ {
		client := strings.TrimSpace(g.Cell(r, 0))
		if client == "" {
			continue
		}
		client = p.Normalize(client)

		for _, m := range months {
			out = append(out, report.ClientTickets{
				Client:     client,
				Month:      m.Name,
				MonthLabel: fmt.Sprintf("%s %d", m.Name, years[m.Name]),
				Type:       ticketType,
				Incoming:   SafeInt(g.Cell(r, m.Col)),
				Resolved:   SafeInt(g.Cell(r, m.Col+1)),
			})
		}
	}
	return out
}

// ParseSLA разбирает лист "sla": пара колонок SLA по заявкам и по
// инцидентам на месяц. Прочерк "-" означает отсутствие значения и
// сохраняется как nil, в отличие от числового нуля.
func (p *ClientParser) ParseSLA(g Grid) []report.ClientSLA {
	months := monthColumns(g)
	if len(months) == 0 {
		return nil
	}
	years := inferColumnYears(months)

	var out []report.ClientSLA
	for r := 2; r < g.Rows(); r++ {
		client := strings.TrimSpace(g.Cell(r, 0))
		if client == "" {
			continue
		}
		client = p.Normalize(client)

		for _, m := range months {
			out = append(out, report.ClientSLA{
				Client:      client,
				Month:       m.Name,
				MonthLabel:  fmt.Sprintf("%s %d", m.Name, years[m.Name]),
				SLARequest:  slaValue(g.Cell(r, m.Col)),
				SLAIncident: slaValue(g.Cell(r, m.Col+1)),
			})
		}
	}
	return out
}

// ParseMass разбирает лист "массовые": одна колонка на месяц, данные
// начинаются сразу со второй строки, подшапки нет.
func (p *ClientParser) ParseMass(g Grid) []report.ClientMass {
	months := monthColumns(g)
	if len(months) == 0 {
		return nil
	}
	years := inferColumnYears(months)

	var out []report.ClientMass
	for r := 1; r < g.Rows(); r++ {
		client := strings.TrimSpace(g.Cell(r, 0))
		if client == "" {
			continue
		}
		client = p.Normalize(client)

		for _, m := range months {
			out = append(out, report.ClientMass{
				Client:     client,
				Month:      m.Name,
				MonthLabel: fmt.Sprintf("%s %d", m.Name, years[m.Name]),
				Incidents:  SafeInt(g.Cell(r, m.Col)),
			})
		}
	}
	return out
}

// ParseWorkbook разбирает все листы клиентской книги. Лист часов идет
// первым: он задает канонические написания имен для остальных листов.
func (p *ClientParser) ParseWorkbook(src SheetSource) (hours []report.ClientHours, tickets []report.ClientTickets, sla []report.ClientSLA, mass []report.ClientMass) {
	if g, ok := src.Sheet(SheetClientHours); ok {
		hours = p.ParseHours(g)
	} else {
		p.log.Warn("лист клиентского отчета не найден", slog.String("sheet", SheetClientHours))
	}

	for _, name := range []string{SheetClientTickets, SheetClientTasks} {
		g, ok := src.Sheet(name)
		if !ok {
			p.log.Warn("лист клиентского отчета не найден", slog.String("sheet", name))
			continue
		}
		tickets = append(tickets, p.ParseTickets(g, name)...)
	}

	if g, ok := src.Sheet(SheetClientSLA); ok {
		sla = p.ParseSLA(g)
	} else {
		p.log.Warn("лист клиентского отчета не найден", slog.String("sheet", SheetClientSLA))
	}

	if g, ok := src.Sheet(SheetClientMass); ok {
		mass = p.ParseMass(g)
	} else {
		p.log.Warn("лист клиентского отчета не найден", slog.String("sheet", SheetClientMass))
	}

	p.log.Info("клиентская книга разобрана",
		slog.Int("cl_tzt", len(hours)),
		slog.Int("cl_tickets", len(tickets)),
		slog.Int("cl_sla", len(sla)),
		slog.Int("cl_mass", len(mass)))
	return hours, tickets, sla, mass
}

func inferColumnYears(months []monthColumn) map[string]int {
	names := make([]string, len(months))
	for i, m := range months {
		names[i] = m.Name
	}
	return InferMonthYears(names, clientStartYear)
}

func slaValue(v string) *float64 {
	s := strings.TrimSpace(v)
	if s == "" || s == "-" {
		return nil
	}
	f := SafeFloat(s)
	return &f
}
