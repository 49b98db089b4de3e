package strategyconfig

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration은 "24h" 형태의 YAML 값을 받는 time.Duration 래퍼
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config는 페니스톡 반전 전략의 전체 설정
type Config struct {
	Meta     Meta     `yaml:"meta" json:"meta"`
	Universe Universe `yaml:"universe" json:"universe"`
	Alpha    Alpha    `yaml:"alpha" json:"alpha"`
	Schedule Schedule `yaml:"schedule" json:"schedule"`
}

// Meta 메타 정보
type Meta struct {
	StrategyID        string `yaml:"strategy_id" json:"strategy_id"`
	Version           string `yaml:"version" json:"version"`
	Timezone          string `yaml:"timezone" json:"timezone"`
	DecisionTimeLocal string `yaml:"decision_time_local" json:"decision_time_local"` // HH:MM, post-close
}

// Universe S1: 추적 종목 필터
type Universe struct {
	RefreshMonthly bool            `yaml:"refresh_monthly" json:"refresh_monthly"`
	Filters        UniverseFilters `yaml:"filters" json:"filters"`
}

type UniverseFilters struct {
	MaxSymbols          int     `yaml:"max_symbols" json:"max_symbols"`
	MinVolume           int64   `yaml:"min_volume" json:"min_volume"` // strict: volume > min
	MaxVolume           int64   `yaml:"max_volume" json:"max_volume"` // strict: volume < max
	MinPrice            float64 `yaml:"min_price" json:"min_price"`   // strict: price > min
	MaxPrice            float64 `yaml:"max_price" json:"max_price"`   // strict: price < max
	RequireFundamentals bool    `yaml:"require_fundamentals" json:"require_fundamentals"`
}

// Alpha S2: 장중 수익률 랭킹
type Alpha struct {
	Lookback       int      `yaml:"lookback" json:"lookback"`
	Resolution     Duration `yaml:"resolution" json:"resolution"`
	NumberOfStocks int      `yaml:"number_of_stocks" json:"number_of_stocks"`
}

// Schedule 잡 실행 스케줄 (cron, 초 단위 포함)
type Schedule struct {
	UniverseCron string `yaml:"universe_cron" json:"universe_cron"`
	InsightsCron string `yaml:"insights_cron" json:"insights_cron"`
}

// PredictionInterval returns resolution * lookback
func (a Alpha) PredictionInterval() time.Duration {
	return a.Resolution.Std() * time.Duration(a.Lookback)
}

// DecisionSnapshot 의사결정 스냅샷 (재현성용)
type DecisionSnapshot struct {
	ConfigHash string    `json:"config_hash"`
	ConfigYAML string    `json:"config_yaml"`
	StrategyID string    `json:"strategy_id"`
	GitCommit  string    `json:"git_commit"`
	CreatedAt  time.Time `json:"created_at"`
}
