package strategyconfig

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ValidationError 검증 실패 (프로그램 중단)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Warning 권장 위반 (경고만)
type Warning struct {
	Code    string
	Message string
}

// Validate checks all required constraints
// 실패 시 error 반환 (프로그램 중단)
func Validate(cfg *Config) error {
	// === Meta ===
	if cfg.Meta.StrategyID == "" {
		return ValidationError{"meta.strategy_id", "required"}
	}
	if cfg.Meta.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Meta.Timezone); err != nil {
			return ValidationError{"meta.timezone", err.Error()}
		}
	}
	if err := validateHHMM(cfg.Meta.DecisionTimeLocal); err != nil {
		return ValidationError{"meta.decision_time_local", err.Error()}
	}

	// === Universe ===
	f := cfg.Universe.Filters
	if f.MaxSymbols <= 0 {
		return ValidationError{"universe.filters.max_symbols", "must be > 0"}
	}
	if f.MinVolume < 0 {
		return ValidationError{"universe.filters.min_volume", "must be >= 0"}
	}
	if f.MinVolume >= f.MaxVolume {
		return ValidationError{"universe.filters", "min_volume must be < max_volume"}
	}
	if f.MinPrice < 0 {
		return ValidationError{"universe.filters.min_price", "must be >= 0"}
	}
	if f.MinPrice >= f.MaxPrice {
		return ValidationError{"universe.filters", "min_price must be < max_price"}
	}

	// === Alpha ===
	if cfg.Alpha.Lookback <= 0 {
		return ValidationError{"alpha.lookback", "must be > 0"}
	}
	if cfg.Alpha.Resolution <= 0 {
		return ValidationError{"alpha.resolution", "must be > 0"}
	}
	if cfg.Alpha.NumberOfStocks <= 0 {
		return ValidationError{"alpha.number_of_stocks", "must be > 0"}
	}

	// === Schedule ===
	if cfg.Schedule.UniverseCron == "" {
		return ValidationError{"schedule.universe_cron", "required"}
	}
	if cfg.Schedule.InsightsCron == "" {
		return ValidationError{"schedule.insights_cron", "required"}
	}

	return nil
}

// Warn checks recommended constraints (non-fatal)
func Warn(cfg *Config) []Warning {
	var warnings []Warning

	// top-K가 유니버스 상한에 근접하면 랭킹의 의미가 줄어듦
	if cfg.Alpha.NumberOfStocks > cfg.Universe.Filters.MaxSymbols/10 {
		warnings = append(warnings, Warning{
			Code:    "WIDE_SELECTION",
			Message: "number_of_stocks > max_symbols/10: 랭킹 선별 효과 약화",
		})
	}

	// 하루 미만 해상도는 세션 수익률 정의와 맞지 않음
	if cfg.Alpha.Resolution.Std() < 24*time.Hour {
		warnings = append(warnings, Warning{
			Code:    "SUB_DAILY_RESOLUTION",
			Message: "resolution < 24h: 세션 open/close 기반 수익률과 불일치 가능",
		})
	}

	return warnings
}

// === Helper Functions ===

func validateHHMM(s string) error {
	re := regexp.MustCompile(`^\d{2}:\d{2}$`)
	if !re.MatchString(s) {
		return errors.New("must be HH:MM format")
	}
	_, err := time.Parse("15:04", s)
	return err
}
