package postgres

// ===========================================
// SQL Queries - Guild Profiles
// ===========================================

const (
	queryLoadProfiles = `
		SELECT user_id, username, xp, level, message_count, last_daily_bonus
		FROM guild_profiles
		WHERE guild_id = $1`

	queryUpsertProfile = `
		INSERT INTO guild_profiles (guild_id, user_id, username, xp, level, message_count, last_daily_bonus, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (guild_id, user_id) DO UPDATE SET
			username = EXCLUDED.username,
			xp = EXCLUDED.xp,
			level = EXCLUDED.level,
			message_count = EXCLUDED.message_count,
			last_daily_bonus = EXCLUDED.last_daily_bonus,
			updated_at = NOW()`
)

// ===========================================
// SQL Queries - Activity States
// ===========================================

const (
	queryLoadActivity = `
		SELECT user_id, channel_kind, last_activity, saturation_count
		FROM activity_states
		WHERE guild_id = $1`

	queryUpsertActivity = `
		INSERT INTO activity_states (guild_id, user_id, channel_kind, last_activity, saturation_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (guild_id, user_id, channel_kind) DO UPDATE SET
			last_activity = EXCLUDED.last_activity,
			saturation_count = EXCLUDED.saturation_count,
			updated_at = NOW()`
)

// ===========================================
// SQL Queries - Survival Scores
// ===========================================

const (
	queryUpsertScore = `
		INSERT INTO survival_scores (guild_id, user_id, username, day, hour, minute, difficulty, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (guild_id, user_id, difficulty) DO UPDATE SET
			username = EXCLUDED.username,
			day = EXCLUDED.day,
			hour = EXCLUDED.hour,
			minute = EXCLUDED.minute,
			updated_at = NOW()`

	queryListScores = `
		SELECT user_id, username, day, hour, minute, difficulty
		FROM survival_scores
		WHERE guild_id = $1`
)

// ===========================================
// SQL Queries - Board Messages
// ===========================================

const (
	queryGetBoard = `
		SELECT channel_id, message_id
		FROM board_messages
		WHERE guild_id = $1 AND board_kind = $2`

	queryUpsertBoard = `
		INSERT INTO board_messages (guild_id, board_kind, channel_id, message_id, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (guild_id, board_kind) DO UPDATE SET
			channel_id = EXCLUDED.channel_id,
			message_id = EXCLUDED.message_id,
			updated_at = NOW()`

	queryDeleteBoard = `
		DELETE FROM board_messages
		WHERE guild_id = $1 AND board_kind = $2`

	queryListBoards = `
		SELECT guild_id, channel_id, message_id
		FROM board_messages
		WHERE board_kind = $1`
)
