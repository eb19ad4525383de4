package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs: one classification pass over one snapshot with one configuration
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    snapshot_hash TEXT NOT NULL UNIQUE,  -- sha256 of snapshot bytes + effective settings
    url TEXT,
    title TEXT,
    language TEXT,
    page_height REAL NOT NULL,
    min_confidence REAL NOT NULL,
    fallback TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    -- Gate stats
    section_count INTEGER DEFAULT 0,
    high_count INTEGER DEFAULT 0,
    medium_count INTEGER DEFAULT 0,
    low_count INTEGER DEFAULT 0,
    none_count INTEGER DEFAULT 0,
    reanalysis_count INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_url ON runs(url);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

-- Gated sections of a run, in page order
CREATE TABLE IF NOT EXISTS run_sections (
    run_id INTEGER NOT NULL,
    section_index INTEGER NOT NULL,
    tag TEXT,
    label TEXT,
    archetype TEXT NOT NULL,
    variant TEXT,
    confidence REAL NOT NULL,
    method TEXT NOT NULL,
    tier TEXT NOT NULL,
    original_archetype TEXT,
    y REAL,
    height REAL,
    section_json TEXT NOT NULL,  -- full gated section
    PRIMARY KEY (run_id, section_index),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_sections_archetype ON run_sections(archetype);
CREATE INDEX IF NOT EXISTS idx_run_sections_tier ON run_sections(tier);

-- Sections below the acceptance threshold
CREATE TABLE IF NOT EXISTS run_worklist (
    run_id INTEGER NOT NULL,
    section_index INTEGER NOT NULL,
    archetype TEXT NOT NULL,
    variant TEXT,
    confidence REAL NOT NULL,
    method TEXT NOT NULL,
    label TEXT,
    tier TEXT NOT NULL,
    x REAL,
    y REAL,
    width REAL,
    height REAL,
    PRIMARY KEY (run_id, section_index),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);
`
