package levels

// xpThresholds maps level-1 to the minimum cumulative XP required for that
// level. Taken from the ARK: Survival Ascended player XP table (levels 1-180).
// Thresholds are strictly increasing and level 1 starts at 0.
var xpThresholds = [...]float64{
	0, 26, 54, 89, 131, 181, 239, 306, 381, 466, 560, 665, 780, 907, 1045, 1196, 1360, 1537, 1727, 1932,
	2151, 2385, 2635, 2901, 3184, 3485, 3805, 4144, 4504, 4885, 5288, 5714, 6163, 6637, 7136, 7661, 8213, 8793, 9402, 10041,
	10711, 11413, 12148, 12917, 13721, 14561, 15438, 16353, 17308, 18304, 19342, 20423, 21549, 22721, 23940, 25209, 26528, 27899, 29324, 30805,
	32342, 33938, 35595, 37314, 39097, 40946, 42863, 44849, 46907, 49039, 51246, 53530, 55893, 58337, 60864, 63476, 66175, 68963, 71842, 74815,
	77883, 81049, 84315, 87683, 91156, 94736, 98425, 102226, 106142, 110175, 114328, 118603, 123003, 127530, 132188, 136979, 141906, 146972, 152181, 157535,
	163038, 168693, 174503, 180471, 186600, 192894, 199356, 205990, 212799, 219787, 226958, 234315, 241863, 249606, 257548, 265693, 274045, 282609, 291389, 300390,
	309616, 319072, 328762, 338691, 348864, 359285, 369960, 380894, 392092, 403559, 415300, 427321, 439628, 452226, 465121, 478318, 491824, 505644, 519785, 534252,
	549052, 564191, 579675, 595512, 611707, 628267, 645200, 662512, 680211, 698304, 716798, 735701, 755021, 774766, 794944, 815563, 836631, 858158, 880152, 902622,
	925577, 949027, 972982, 997451, 1022444, 1047971, 1074043, 1100670, 1127863, 1155633, 1183991, 1212949, 1242518, 1272710, 1303537, 1335010, 1367142, 1399946, 1433434, 1467619,
}

// MaxLevel is the highest attainable level; XP beyond the last threshold
// never levels further.
const MaxLevel = len(xpThresholds)

// LevelForXP returns the largest level whose threshold is at or below xp,
// clamped to [1, MaxLevel]. The table is small, so a linear scan from the
// top is fine.
func LevelForXP(xp float64) int {
	for i := len(xpThresholds) - 1; i >= 0; i-- {
		if xp >= xpThresholds[i] {
			return i + 1
		}
	}
	return 1
}

// XPForLevel returns the minimum cumulative XP for the given level.
// Levels at or below zero cost nothing; levels beyond the table saturate at
// the final threshold.
func XPForLevel(level int) float64 {
	if level <= 0 {
		return 0
	}
	if level > MaxLevel {
		return xpThresholds[MaxLevel-1]
	}
	return xpThresholds[level-1]
}
