package report

// DailyRecord — одна запись: сотрудник × дата × блок отчета.
// После создания не изменяется, кроме порядкового номера месяца (mo),
// который проставляется после того как известен полный список месяцев.
type DailyRecord struct {
	Employee   string  `json:"e"`
	Subgroup   string  `json:"sg"`
	Group      string  `json:"g"`
	Date       string  `json:"d"`
	Month      string  `json:"m"`
	MonthOrder int     `json:"mo"`
	Hours      float64 `json:"tzt"`
	Tickets    int     `json:"tk_b"`
	Tasks      int     `json:"ts_b"`
	RegTickets int     `json:"tk_r"`
	RegTasks   int     `json:"ts_r"`
	SiteVisits int     `json:"vz"`
}

// SheetConfig — статическая конфигурация листа операционного отчета:
// упорядоченный список подгрупп и родительская группа.
// Порядок подгрупп определяет позиционное назначение строк и не меняется.
type SheetConfig struct {
	Sheet     string
	Subgroups []string
	Group     string
}

// EmployeeMonthly — агрегат по (сотрудник, подгруппа, месяц).
type EmployeeMonthly struct {
	Employee   string  `json:"employee"`
	Subgroup   string  `json:"subgroup"`
	Group      string  `json:"group"`
	Month      string  `json:"month"`
	MonthOrder int     `json:"month_order"`
	Hours      float64 `json:"tzt"`
	Norm       int     `json:"norm"`
	Util       float64 `json:"util"`
	Tickets    int     `json:"tk_b"`
	Tasks      int     `json:"ts_b"`
	RegTickets int     `json:"tk_r"`
	RegTasks   int     `json:"ts_r"`
	TphTickets float64 `json:"tph_b"`
	TphTasks   float64 `json:"tph_z"`
	TphAll     float64 `json:"tph_all"`
	SiteVisits int     `json:"vz"`
}

// SubgroupMonthly — агрегат по (подгруппа, месяц).
type SubgroupMonthly struct {
	Subgroup   string  `json:"subgroup"`
	Group      string  `json:"group"`
	Month      string  `json:"month"`
	MonthOrder int     `json:"month_order"`
	Hours      float64 `json:"tzt"`
	Norm       int     `json:"norm"`
	Util       float64 `json:"util"`
	Tickets    int     `json:"tk_b"`
	Tasks      int     `json:"ts_b"`
	RegTickets int     `json:"tk_r"`
	RegTasks   int     `json:"ts_r"`
	Employees  int     `json:"employees"`
	Days       int     `json:"days"`
	TphTickets float64 `json:"tph_b"`
	TphTasks   float64 `json:"tph_z"`
	TphAll     float64 `json:"tph_all"`
	SiteVisits int     `json:"vz"`
}

// ClientHours — строка листа "данные тзт" (часы по клиентам).
type ClientHours struct {
	Client     string  `json:"client"`
	Month      string  `json:"month"`
	MonthLabel string  `json:"ml"`
	MonthOrder int     `json:"mo"`
	Team       string  `json:"team"`
	Type       string  `json:"tzt_type"`
	Hours      float64 `json:"tzt"`
}

// ClientTickets — строка сводных листов "заявки"/"задачи".
type ClientTickets struct {
	Client     string `json:"client"`
	Month      string `json:"month"`
	MonthLabel string `json:"ml"`
	MonthOrder int    `json:"mo"`
	Type       string `json:"type"`
	Incoming   int    `json:"incoming"`
	Resolved   int    `json:"resolved"`
}

// ClientSLA — строка листа "sla". Прочерк в ячейке означает отсутствие
// значения (nil), а не ноль.
type ClientSLA struct {
	Client      string   `json:"client"`
	Month       string   `json:"month"`
	MonthLabel  string   `json:"ml"`
	MonthOrder  int      `json:"mo"`
	SLARequest  *float64 `json:"sr"`
	SLAIncident *float64 `json:"si"`
}

// ClientMass — строка листа "массовые" (массовые инциденты).
type ClientMass struct {
	Client     string `json:"client"`
	Month      string `json:"month"`
	MonthLabel string `json:"ml"`
	MonthOrder int    `json:"mo"`
	Incidents  int    `json:"mi"`
}
