package parser

// Несколько подгрупп лежат в одном блоке подряд и разделены только
// пустыми строками либо строками "Итого"/беклогов — явных подписей
// подгрупп нет. Единственный сигнал — позиция и счет разрывов, поэтому
// назначение сделано конечным автоматом с двумя состояниями.

type scanState int

const (
	awaitingEmployee scanState = iota
	inGap
)

// SubgroupScanner назначает строкам тела блока подгруппы из
// упорядоченного списка. Курсор стартует с первой подгруппы и сдвигается
// на следующую при первой строке сотрудника после разрыва; на последней
// подгруппе курсор насыщается и дальше не двигается.
type SubgroupScanner struct {
	subgroups []string
	skip      map[string]struct{}
	state     scanState
	idx       int
}

// NewSubgroupScanner создает сканер для одного блока. skip — подписи
// строк-разрывов (итоги, беклоги), в нижнем регистре.
func NewSubgroupScanner(subgroups []string, skip map[string]struct{}) *SubgroupScanner {
	return &SubgroupScanner{
		subgroups: subgroups,
		skip:      skip,
		state:     awaitingEmployee,
	}
}

// Scan принимает подпись строки из первой колонки. Для строки сотрудника
// возвращает имя подгруппы и true; для строки-разрыва — false, такие
// строки данными не являются.
func (s *SubgroupScanner) Scan(label string) (string, bool) {
	norm := normLabel(label)
	if norm == "" {
		s.state = inGap
		return "", false
	}
	if _, skip := s.skip[norm]; skip {
		s.state = inGap
		return "", false
	}

	if s.state == inGap && s.idx < len(s.subgroups)-1 {
		s.idx++
	}
	s.state = awaitingEmployee
	if len(s.subgroups) == 0 {
		return "", true
	}
	return s.subgroups[s.idx], true
}
