package sqlite

// Schema DDL. Unlike a scratch cache, the store is the system of record, so
// every table is created only if missing and existing data is preserved
// across opens.
const (
	createReferenceCodes = `CREATE TABLE IF NOT EXISTS reference_codes (
    record_type TEXT NOT NULL,
    code TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    PRIMARY KEY (record_type, code)
);`

	createOwners = `CREATE TABLE IF NOT EXISTS owners (
    owner_code TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    note TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createProperties = `CREATE TABLE IF NOT EXISTS properties (
    property_code TEXT PRIMARY KEY,
    company_code TEXT NOT NULL,
    property_type TEXT NOT NULL,
    build_type TEXT NOT NULL DEFAULT '',
    year_built INTEGER NOT NULL DEFAULT 0,
    area REAL NOT NULL,
    unit_of_measure TEXT NOT NULL DEFAULT '',
    facade REAL NOT NULL DEFAULT 0,
    depth REAL NOT NULL DEFAULT 0,
    bedrooms INTEGER NOT NULL DEFAULT 0,
    bathrooms INTEGER NOT NULL DEFAULT 0,
    is_corner INTEGER NOT NULL DEFAULT 0,
    offer_type TEXT NOT NULL DEFAULT '',
    province_code TEXT NOT NULL DEFAULT '',
    region_code TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    has_photos INTEGER NOT NULL DEFAULT 0,
    owner_code TEXT,
    description TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	// Photo bytes live outside the store; this is metadata only. Some
	// deployments predate the surrogate id column, which is why the photo
	// accessor probes the actual column set instead of trusting this DDL.
	createPhotos = `CREATE TABLE IF NOT EXISTS photos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    property_code TEXT NOT NULL,
    storage_path TEXT NOT NULL,
    file_name TEXT NOT NULL,
    extension TEXT NOT NULL DEFAULT '',
    uploaded_at TEXT NOT NULL
);`

	createPhotosIndex = `CREATE INDEX IF NOT EXISTS idx_photos_property
    ON photos (property_code);`

	createPropertiesOwnerIndex = `CREATE INDEX IF NOT EXISTS idx_properties_owner
    ON properties (owner_code);`
)

// schemaStatements lists the DDL executed on open, in order.
var schemaStatements = []string{
	createReferenceCodes,
	createOwners,
	createProperties,
	createPhotos,
	createPhotosIndex,
	createPropertiesOwnerIndex,
}
