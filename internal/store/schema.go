package store

const schema = `
CREATE TABLE IF NOT EXISTS unihan (
    codepoint TEXT PRIMARY KEY,
    character TEXT NOT NULL,
    radical INTEGER,
    radical_char TEXT,
    additional_strokes INTEGER,
    total_strokes INTEGER,
    pinyin TEXT,
    definition TEXT,
    cantonese TEXT,
    simplified_variant TEXT,
    traditional_variant TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_character ON unihan(character);
CREATE INDEX IF NOT EXISTS idx_radical ON unihan(radical);
CREATE INDEX IF NOT EXISTS idx_strokes ON unihan(total_strokes);

CREATE TABLE IF NOT EXISTS radicals (
    number INTEGER PRIMARY KEY,
    character TEXT NOT NULL,
    strokes INTEGER NOT NULL,
    meaning TEXT,
    pinyin TEXT
);
`

const upsertCharacterSQL = `
INSERT OR REPLACE INTO unihan (
    codepoint, character, radical, radical_char,
    additional_strokes, total_strokes, pinyin, definition,
    cantonese, simplified_variant, traditional_variant
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const upsertRadicalSQL = `
INSERT OR REPLACE INTO radicals (number, character, strokes, meaning, pinyin)
VALUES (?, ?, ?, ?, ?)
`

const characterColumns = `codepoint, character, radical, radical_char,
    additional_strokes, total_strokes, pinyin, definition,
    cantonese, simplified_variant, traditional_variant, created_at`
