package parser

import (
	"log/slog"
	"strings"

	"github.com/jenyar623-ui/ascorp-leaders/internal/report"
)

// OpsParser разбирает листы операционного отчета в плоские дневные записи.
type OpsParser struct {
	log     *slog.Logger
	headers map[string]Field
	skip    map[string]struct{}
}

// NewOpsParser создает парсер с таблицами по умолчанию.
func NewOpsParser(log *slog.Logger) *OpsParser {
	return &OpsParser{
		log:     log,
		headers: DefaultHeaderMap(),
		skip:    report.DefaultSkipLabels(),
	}
}

// ParseWorkbook разбирает все сконфигурированные листы книги.
// Отсутствующий лист дает ноль записей и предупреждение, не ошибку.
func (p *OpsParser) ParseWorkbook(src SheetSource, sheets []report.SheetConfig) []report.DailyRecord {
	var all []report.DailyRecord
	for _, cfg := range sheets {
		g, ok := src.Sheet(cfg.Sheet)
		if !ok {
			p.log.Warn("лист операционного отчета не найден", slog.String("sheet", cfg.Sheet))
			continue
		}
		records := p.ParseSheet(g, cfg)
		p.log.Info("лист разобран",
			slog.String("sheet", cfg.Sheet),
			slog.Int("daily_records", len(records)))
		all = append(all, records...)
	}
	return all
}

// ParseSheet разбирает один лист: находит блоки, для каждого блока — его
// раскладку и колонки дат, затем строит по записи на пару
// (строка сотрудника × колонка даты).
func (p *OpsParser) ParseSheet(g Grid, cfg report.SheetConfig) []report.DailyRecord {
	var records []report.DailyRecord
	for _, b := range FindBlocks(g, p.headers) {
		scanner := NewSubgroupScanner(cfg.Subgroups, p.skip)
		for r := b.BodyStart; r <= b.BodyEnd; r++ {
			name := strings.TrimSpace(g.Cell(r, 0))
			subgroup, ok := scanner.Scan(name)
			if !ok {
				continue
			}
			for _, dc := range b.Dates {
				records = append(records, p.buildRecord(g, r, dc, b.Layout, name, subgroup, cfg.Group))
			}
		}
	}
	return records
}

// buildRecord заполняет одну дневную запись, проходя раскладку блока от
// колонки даты. Правила полей повторяют сложившиеся за время форматы
// отчетов и меняться не должны.
func (p *OpsParser) buildRecord(g Grid, row int, dc DateColumn, layout Layout, name, subgroup, group string) report.DailyRecord {
	rec := report.DailyRecord{
		Employee: name,
		Subgroup: subgroup,
		Group:    group,
		Date:     dc.Date.Format("2006-01-02"),
		Month:    report.MonthLabel(dc.Date),
	}

	hasRegTasks := layout.Has(FieldRegTasks)
	for offset, field := range layout {
		val := g.Cell(row, dc.Col+offset)
		switch field {
		case FieldHours:
			rec.Hours = round2(SafeFloat(val))
		case FieldSiteVisits:
			v := SafeInt(val)
			rec.SiteVisits = v
			// Выезды засчитываются как рег. задачи, только когда в
			// раскладке нет собственной колонки рег. задач.
			if !hasRegTasks {
				rec.RegTasks = v
			}
		case FieldTickets:
			rec.Tickets = SafeInt(val)
		case FieldTasks:
			rec.Tasks = SafeInt(val)
		case FieldRegTickets:
			rec.RegTickets = SafeInt(val)
		case FieldRegTasks:
			rec.RegTasks = SafeInt(val)
		}
		// FieldNone пропускается
	}
	return rec
}
