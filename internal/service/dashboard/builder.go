package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jenyar623-ui/ascorp-leaders/internal/aggregate"
	"github.com/jenyar623-ui/ascorp-leaders/internal/config"
	"github.com/jenyar623-ui/ascorp-leaders/internal/parser"
	"github.com/jenyar623-ui/ascorp-leaders/internal/report"
	"github.com/jenyar623-ui/ascorp-leaders/internal/workbook"
)

// Status — итог последней сборки для страницы статуса.
type Status struct {
	LastBuild  time.Time `json:"last_build"`
	DurationMS int64     `json:"duration_ms"`
	Daily      int       `json:"daily"`
	EmpMonthly int       `json:"emp_monthly"`
	SgMonthly  int       `json:"sg_monthly"`
	Clients    int       `json:"clients"`
	Error      string    `json:"error,omitempty"`
}

// Builder прогоняет полный цикл: книги → записи → агрегаты → JSON → HTML.
type Builder struct {
	log      *slog.Logger
	cfg      config.Config
	sheets   []report.SheetConfig
	calendar report.Calendar

	// buildMu сериализует сборки целиком: watcher и ручной пересбор
	// делят один Builder и не должны писать выходные файлы одновременно.
	buildMu sync.Mutex

	mu     sync.Mutex
	status Status
}

// NewBuilder создает сборщик с конфигурацией листов и календарем по
// умолчанию.
func NewBuilder(log *slog.Logger, cfg config.Config) *Builder {
	return &Builder{
		log:      log,
		cfg:      cfg,
		sheets:   report.DefaultSheetConfig(),
		calendar: report.ProductionCalendar(),
	}
}

// Status возвращает итог последней сборки.
func (b *Builder) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

// JSONPath — путь к собранному JSON-документу.
func (b *Builder) JSONPath() string {
	return b.cfg.JSONOutput
}

// HTMLPath — путь к собранной странице.
func (b *Builder) HTMLPath() string {
	return b.cfg.HTMLOutput
}

// SourceFiles — файлы, изменение которых требует пересборки.
func (b *Builder) SourceFiles() []string {
	return []string{b.cfg.OpsWorkbook, b.cfg.ClientWorkbook}
}

// Build выполняет одну сборку до конца; отмена посреди сборки не
// поддерживается, ctx ограничивает только параллельное чтение книг.
// Параллельные вызовы выполняются по очереди.
func (b *Builder) Build(ctx context.Context) error {
	const op = "dashboard.Build"

	b.buildMu.Lock()
	defer b.buildMu.Unlock()
	start := time.Now()

	data, err := b.buildData(ctx)
	if err == nil {
		err = b.writeOutputs(data)
	}

	b.mu.Lock()
	b.status = Status{
		LastBuild:  start,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if err != nil {
		b.status.Error = err.Error()
	} else {
		b.status.Daily = len(data.Daily)
		b.status.EmpMonthly = len(data.EmpMonthly)
		b.status.SgMonthly = len(data.SgMonthly)
		b.status.Clients = len(data.Clients)
	}
	b.mu.Unlock()

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	b.log.Info("сборка завершена",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("daily", len(data.Daily)),
		slog.Int("emp_monthly", len(data.EmpMonthly)),
		slog.Int("sg_monthly", len(data.SgMonthly)),
		slog.Int("clients", len(data.Clients)))
	return nil
}

// buildData читает обе книги (параллельно) и собирает документ.
func (b *Builder) buildData(ctx context.Context) (*Data, error) {
	var (
		daily   []report.DailyRecord
		hours   []report.ClientHours
		tickets []report.ClientTickets
		sla     []report.ClientSLA
		mass    []report.ClientMass
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		wb, err := workbook.Open(b.log, b.cfg.OpsWorkbook, b.cfg.LoadRetries, b.cfg.RetryDelay)
		if err != nil {
			return fmt.Errorf("ops workbook: %w", err)
		}
		daily = parser.NewOpsParser(b.log).ParseWorkbook(wb, b.sheets)
		return nil
	})
	g.Go(func() error {
		wb, err := workbook.Open(b.log, b.cfg.ClientWorkbook, b.cfg.LoadRetries, b.cfg.RetryDelay)
		if err != nil {
			return fmt.Errorf("client workbook: %w", err)
		}
		hours, tickets, sla, mass = parser.NewClientParser(b.log).ParseWorkbook(wb)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return b.assemble(daily, hours, tickets, sla, mass), nil
}

// assemble — детерминированная сборка документа из разобранных записей.
func (b *Builder) assemble(daily []report.DailyRecord, hours []report.ClientHours, tickets []report.ClientTickets, sla []report.ClientSLA, mass []report.ClientMass) *Data {
	// Страница ждет массивы, не null.
	if daily == nil {
		daily = []report.DailyRecord{}
	}
	if hours == nil {
		hours = []report.ClientHours{}
	}
	if tickets == nil {
		tickets = []report.ClientTickets{}
	}
	if sla == nil {
		sla = []report.ClientSLA{}
	}
	if mass == nil {
		mass = []report.ClientMass{}
	}

	hierarchy, groupMap, sgToGroup := aggregate.BuildHierarchy(daily, b.sheets)
	monthsOps, opsOrder := aggregate.Months(daily)
	for i := range daily {
		daily[i].MonthOrder = opsOrder[daily[i].Month]
	}
	empMonthly, sgMonthly := aggregate.New(b.calendar).Monthly(daily, opsOrder)

	monthsCl, clOrder := clientMonths(hours)
	for i := range hours {
		hours[i].MonthOrder = clOrder[hours[i].MonthLabel]
	}
	for i := range tickets {
		tickets[i].MonthOrder = clOrder[tickets[i].MonthLabel]
	}
	for i := range sla {
		sla[i].MonthOrder = clOrder[sla[i].MonthLabel]
	}
	for i := range mass {
		mass[i].MonthOrder = clOrder[mass[i].MonthLabel]
	}

	return &Data{
		Hierarchy:    hierarchy,
		GroupMap:     groupMap,
		SgToGroup:    sgToGroup,
		MonthsOps:    monthsOps,
		MonthsCl:     monthsCl,
		Clients:      collectClients(hours, tickets, sla, mass),
		TeamsCl:      collectTeams(hours),
		Daily:        daily,
		SgMonthly:    sgMonthly,
		EmpMonthly:   empMonthly,
		ClTzt:        hours,
		ClTickets:    tickets,
		ClSLA:        sla,
		ClMass:       mass,
		ProdCalendar: calendarFor(b.calendar, monthsOps, monthsCl),
	}
}

// writeOutputs пишет JSON, собирает HTML и копирует его в общую папку.
// Копирование — по возможности: неудача логируется, сборку не валит.
func (b *Builder) writeOutputs(data *Data) error {
	if err := WriteJSON(b.cfg.JSONOutput, data); err != nil {
		return err
	}
	b.log.Info("JSON записан", slog.String("path", b.cfg.JSONOutput))

	if err := BuildHTML(b.cfg); err != nil {
		return err
	}
	b.log.Info("HTML записан", slog.String("path", b.cfg.HTMLOutput))

	if b.cfg.SharedDir != "" {
		if err := CopyShared(b.cfg); err != nil {
			b.log.Warn("не удалось скопировать дашборд в общую папку",
				slog.String("error", err.Error()))
		} else {
			b.log.Info("дашборд скопирован в общую папку", slog.String("dir", b.cfg.SharedDir))
		}
	}
	return nil
}
