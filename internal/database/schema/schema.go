package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Seeds: a user's personal inventory. Growth durations are typed integers;
-- legacy "30-60 days" strings are normalized before they ever reach a row.
CREATE TABLE IF NOT EXISTS seeds (
    seed_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL,
    name VARCHAR(100) NOT NULL,
    category VARCHAR(20) NOT NULL CHECK (category IN ('Fruit', 'Vegetable')),
    quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    min_growth_days INTEGER NOT NULL CHECK (min_growth_days >= 0),
    max_growth_days INTEGER NOT NULL CHECK (max_growth_days >= min_growth_days),
    preferred_weather VARCHAR(50),
    info TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_seeds_user_name ON seeds (user_id, name);

-- Planted dates: one row per (user, day, seed). Multiple seeds per day are
-- multiple rows; replanting the same seed on the same day is a conflict no-op.
CREATE TABLE IF NOT EXISTS planted_dates (
    user_id UUID NOT NULL,
    planted_on DATE NOT NULL,
    seed_id UUID NOT NULL REFERENCES seeds(seed_id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_id, planted_on, seed_id)
);

CREATE INDEX IF NOT EXISTS idx_planted_dates_user ON planted_dates (user_id);

-- Journal entries: auto-appended on planting plus user notes.
CREATE TABLE IF NOT EXISTS journal_entries (
    entry_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL,
    entry_date DATE NOT NULL,
    seed_id UUID,
    message TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_journal_entries_user_date ON journal_entries (user_id, entry_date DESC);

-- Shared read-only wiki reference tables, one per category like the source
-- data they were imported from.
CREATE TABLE IF NOT EXISTS fruit_seeds (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(100) UNIQUE NOT NULL,
    min_growth_days INTEGER NOT NULL CHECK (min_growth_days >= 0),
    max_growth_days INTEGER NOT NULL CHECK (max_growth_days >= min_growth_days),
    preferred_weather VARCHAR(50),
    info TEXT,
    image_url TEXT
);

CREATE TABLE IF NOT EXISTS vegetable_seeds (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(100) UNIQUE NOT NULL,
    min_growth_days INTEGER NOT NULL CHECK (min_growth_days >= 0),
    max_growth_days INTEGER NOT NULL CHECK (max_growth_days >= min_growth_days),
    preferred_weather VARCHAR(50),
    info TEXT,
    image_url TEXT
);
`

// ReferenceDataSQL seeds the wiki tables idempotently.
const ReferenceDataSQL = `
INSERT INTO fruit_seeds (name, min_growth_days, max_growth_days, preferred_weather, info) VALUES
    ('Apple', 60, 90, 'Temperate', 'A sweet fruit that grows on trees.'),
    ('Strawberry', 30, 45, 'Temperate', 'A low-growing fruit that spreads by runners.'),
    ('Watermelon', 70, 100, 'Warm', 'A sprawling vine fruit that needs a long warm season.')
ON CONFLICT (name) DO NOTHING;

INSERT INTO vegetable_seeds (name, min_growth_days, max_growth_days, preferred_weather, info) VALUES
    ('Tomato', 60, 80, 'Warm', 'A juicy vegetable often used in salads.'),
    ('Carrot', 70, 80, 'Cool', 'A root vegetable that grows best in cool climates.'),
    ('Lettuce', 30, 60, 'Cool', 'A fast leafy crop that bolts in heat.'),
    ('Pepper', 60, 90, 'Warm', 'Needs warm soil and steady watering.')
ON CONFLICT (name) DO NOTHING;
`
