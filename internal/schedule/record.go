package schedule

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("clock", validateClock)
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := ParseClock(fl.Field().String())
	return err == nil
}

// Record внешнее представление окна (чтение из хранилища и сохранение в него)
type Record struct {
	ID                *int64 `json:"id,omitempty"`
	Weekday           int    `json:"weekday" validate:"min=1,max=7"`
	WeekCycle         string `json:"week_cycle" validate:"required,oneof=ALL ODD EVEN"`
	OpenTime          string `json:"open_time" validate:"required,clock"`
	CloseTime         string `json:"close_time" validate:"required,clock"`
	Title             string `json:"title,omitempty" validate:"max=100"`
	GenderRestriction string `json:"gender_restriction,omitempty" validate:"omitempty,oneof=ALL BOYS GIRLS OTHER"`
	RestrictionMode   string `json:"restriction_mode,omitempty" validate:"omitempty,oneof=NONE AGE GRADE"`
	MinValue          *int   `json:"min_value"`
	MaxValue          *int   `json:"max_value"`
}

// ParseRecord проверяет запись и переводит её в окно; время обрезается до HH:MM
func ParseRecord(r Record) (Window, error) {
	if err := validate.Struct(r); err != nil {
		return Window{}, fmt.Errorf("invalid record: %w", err)
	}

	weekday, err := ParseWeekday(r.Weekday)
	if err != nil {
		return Window{}, err
	}
	cycle, err := ParseWeekCycle(r.WeekCycle)
	if err != nil {
		return Window{}, err
	}
	open, err := ParseClock(r.OpenTime)
	if err != nil {
		return Window{}, fmt.Errorf("open_time: %w", err)
	}
	closeAt, err := ParseClock(r.CloseTime)
	if err != nil {
		return Window{}, fmt.Errorf("close_time: %w", err)
	}
	gender, err := ParseGender(r.GenderRestriction)
	if err != nil {
		return Window{}, err
	}
	mode, err := ParseRestrictionMode(r.RestrictionMode)
	if err != nil {
		return Window{}, err
	}

	w := Window{
		Weekday: weekday,
		Cycle:   cycle,
		Open:    open,
		Close:   closeAt,
		Title:   r.Title,
		Gender:  gender,
		Restriction: Restriction{
			Mode: mode,
			Min:  copyInt(r.MinValue),
			Max:  copyInt(r.MaxValue),
		},
	}

	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// NewRecord переводит окно во внешнее представление без ID
func NewRecord(w Window) Record {
	gender := w.Gender
	if gender == "" {
		gender = GenderAll
	}
	mode := w.Restriction.Mode
	if mode == "" {
		mode = RestrictionNone
	}

	return Record{
		Weekday:           int(w.Weekday),
		WeekCycle:         w.Cycle.String(),
		OpenTime:          w.Open.String(),
		CloseTime:         w.Close.String(),
		Title:             w.Title,
		GenderRestriction: gender.String(),
		RestrictionMode:   mode.String(),
		MinValue:          copyInt(w.Restriction.Min),
		MaxValue:          copyInt(w.Restriction.Max),
	}
}

// NewRecords переводит весь набор во внешнее представление для сохранения
func NewRecords(windows []Window) []Record {
	records := make([]Record, 0, len(windows))
	for _, w := range windows {
		records = append(records, NewRecord(w))
	}
	return records
}

// Skipped запись, которую не удалось разобрать
type Skipped struct {
	Index int
	ID    *int64
	Err   error
}

// DecodeRecords разбирает все записи; битые пропускаются и возвращаются отдельно,
// чтобы одна плохая запись не ломала расчёт по остальным
func DecodeRecords(records []Record) ([]Window, []Skipped) {
	windows := make([]Window, 0, len(records))
	var skipped []Skipped

	for i, r := range records {
		w, err := ParseRecord(r)
		if err != nil {
			skipped = append(skipped, Skipped{Index: i, ID: r.ID, Err: err})
			continue
		}
		windows = append(windows, w)
	}

	return windows, skipped
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
