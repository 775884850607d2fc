package collection

import (
	"math"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// Levels is the ordered EXP table. Bands are contiguous: every MaxExp equals the
// next level's MinExp, and the top level is unbounded.
var Levels = []domain.Level{
	{Level: 1, Title: "見習いコレクター", Icon: "🌱", MinExp: 0, MaxExp: 50},
	{Level: 2, Title: "駆け出しコレクター", Icon: "🌿", MinExp: 50, MaxExp: 150},
	{Level: 3, Title: "ものの記録係", Icon: "📷", MinExp: 150, MaxExp: 300},
	{Level: 4, Title: "整理上手", Icon: "🗂️", MinExp: 300, MaxExp: 500},
	{Level: 5, Title: "断捨離の達人", Icon: "✨", MinExp: 500, MaxExp: 800},
	{Level: 6, Title: "思い出の守り人", Icon: "🏺", MinExp: 800, MaxExp: 1200},
	{Level: 7, Title: "モノの語り部", Icon: "📜", MinExp: 1200, MaxExp: 1800},
	{Level: 8, Title: "コレクションマスター", Icon: "🏆", MinExp: 1800, MaxExp: 2600},
	{Level: 9, Title: "伝説の収集家", Icon: "👑", MinExp: 2600, MaxExp: 3600},
	{Level: 10, Title: "モノコレの賢者", Icon: "💎", MinExp: 3600, MaxExp: math.MaxInt},
}

// ResolveLevel finds the band containing totalExp. Negative EXP resolves to the
// lowest level and anything past the table resolves to the highest.
func ResolveLevel(totalExp int) domain.LevelProgress {
	if totalExp < 0 {
		totalExp = 0
	}

	current := Levels[len(Levels)-1]
	for _, lvl := range Levels {
		if totalExp >= lvl.MinExp && totalExp < lvl.MaxExp {
			current = lvl
			break
		}
	}

	progress := domain.LevelProgress{
		Level:        current,
		ExpIntoLevel: totalExp - current.MinExp,
		IsMaxLevel:   current.Level == Levels[len(Levels)-1].Level,
	}
	if !progress.IsMaxLevel {
		progress.ExpToNext = current.MaxExp - totalExp
	}
	return progress
}
