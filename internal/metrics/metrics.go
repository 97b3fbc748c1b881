package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// XP Metrics
var (
	XPEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPEvents,
			Help: HelpTextXPEvents,
		},
		[]string{LabelChannel},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)
)

// Command Metrics
var (
	Commands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommands,
			Help: HelpTextCommands,
		},
		[]string{LabelCommand},
	)

	ScoreSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScoreSubmissions,
			Help: HelpTextScoreSubmissions,
		},
		[]string{LabelDifficulty},
	)
)

// Board / Persistence Metrics
var (
	BoardRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoardRefreshes,
			Help: HelpTextBoardRefreshes,
		},
		[]string{LabelBoard, LabelStatus},
	)

	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceFailures,
			Help: HelpTextPersistenceFailures,
		},
		[]string{LabelOperation},
	)
)

// Voice Metrics
var (
	VoiceSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameVoiceSessions,
			Help: HelpTextVoiceSessions,
		},
	)
)
