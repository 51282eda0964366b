package store

// schema for the skillcoach store.
//
// practice_events is append-only: rows are inserted once and never updated.
// skill_states keeps exactly one row per (user_id, skill); the composite
// primary key backs the upsert's conflict target. llm_events records every
// LLM request made through the logging provider.
const schema = `
CREATE TABLE IF NOT EXISTS practice_events (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL,
    skill       TEXT,
    event_type  TEXT NOT NULL,
    difficulty  INTEGER NOT NULL,
    gap         INTEGER NOT NULL DEFAULT 0,
    message     TEXT,
    created_at  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_practice_events_user_skill
    ON practice_events(user_id, skill);

CREATE TABLE IF NOT EXISTS skill_states (
    user_id          TEXT NOT NULL,
    skill            TEXT NOT NULL,
    current_level    INTEGER NOT NULL,
    target_level     INTEGER NOT NULL DEFAULT 5,
    confidence_score REAL NOT NULL,
    last_evaluated   INTEGER NOT NULL,
    PRIMARY KEY (user_id, skill)
);

CREATE TABLE IF NOT EXISTS llm_events (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at    INTEGER NOT NULL,
    provider      TEXT NOT NULL,
    model         TEXT NOT NULL,
    purpose       TEXT NOT NULL,
    input_tokens  INTEGER NOT NULL DEFAULT 0,
    output_tokens INTEGER NOT NULL DEFAULT 0,
    latency_ms    INTEGER NOT NULL DEFAULT 0,
    success       INTEGER NOT NULL,
    error_message TEXT
);
`
