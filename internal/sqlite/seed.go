package sqlite

import (
	"database/sql"
	"time"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// seedEntry is one reference row inserted on first run.
type seedEntry struct {
	recordType types.RecordType
	code       string
	name       string
}

// defaultReferenceData is the taxonomy the store ships with. Names stay in
// Arabic because that is what the offices using the system work in;
// administrative import can extend or override any of it.
var defaultReferenceData = []seedEntry{
	// Provinces.
	{types.RecordTypeProvince, "01001", "بغداد"},
	{types.RecordTypeProvince, "01002", "البصرة"},
	{types.RecordTypeProvince, "01003", "النجف"},
	{types.RecordTypeProvince, "01004", "كربلاء"},
	{types.RecordTypeProvince, "01005", "أربيل"},
	{types.RecordTypeProvince, "01006", "الموصل"},
	{types.RecordTypeProvince, "01007", "الأنبار"},
	{types.RecordTypeProvince, "01008", "واسط"},
	{types.RecordTypeProvince, "01009", "ذي قار"},
	{types.RecordTypeProvince, "01010", "المثنى"},
	{types.RecordTypeProvince, "01011", "القادسية"},
	{types.RecordTypeProvince, "01012", "بابل"},
	{types.RecordTypeProvince, "01013", "كركوك"},
	{types.RecordTypeProvince, "01014", "صلاح الدين"},
	{types.RecordTypeProvince, "01015", "ديالى"},
	{types.RecordTypeProvince, "01016", "ميسان"},
	{types.RecordTypeProvince, "01017", "دهوك"},
	{types.RecordTypeProvince, "01018", "السليمانية"},

	// Regions. A starter set per major city; offices add their own.
	{types.RecordTypeRegion, "02001", "المنصور"},
	{types.RecordTypeRegion, "02002", "الكرادة"},
	{types.RecordTypeRegion, "02003", "الأعظمية"},
	{types.RecordTypeRegion, "02004", "الكاظمية"},
	{types.RecordTypeRegion, "02005", "زيونة"},

	// Property types.
	{types.RecordTypePropertyType, "03001", "منزل"},
	{types.RecordTypePropertyType, "03002", "شقة"},
	{types.RecordTypePropertyType, "03003", "فيلا"},
	{types.RecordTypePropertyType, "03004", "أرض"},
	{types.RecordTypePropertyType, "03005", "محل تجاري"},
	{types.RecordTypePropertyType, "03006", "مكتب"},
	{types.RecordTypePropertyType, "03007", "مستودع"},
	{types.RecordTypePropertyType, "03008", "مجمع سكني"},

	// Build types.
	{types.RecordTypeBuildType, "04001", "طابو صرف"},
	{types.RecordTypeBuildType, "04002", "طابو زراعي"},
	{types.RecordTypeBuildType, "04003", "عرصة"},
	{types.RecordTypeBuildType, "04004", "بناء حديث"},
	{types.RecordTypeBuildType, "04005", "بناء قديم"},

	// Units of measure.
	{types.RecordTypeUnitOfMeasure, "05001", "م²"},
	{types.RecordTypeUnitOfMeasure, "05002", "دونم"},
	{types.RecordTypeUnitOfMeasure, "05003", "أولك"},

	// Offer types.
	{types.RecordTypeOfferType, "06001", "للبيع"},
	{types.RecordTypeOfferType, "06002", "للإيجار"},
	{types.RecordTypeOfferType, "06003", "للاستثمار"},
}

// seedReferenceData inserts the default taxonomy, leaving existing rows
// untouched.
func seedReferenceData(db *sql.DB) error {
	now := time.Now().UTC().Format(timeFormat)
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range defaultReferenceData {
		_, err := tx.Exec(
			`INSERT OR IGNORE INTO reference_codes (record_type, code, name, description, created_at)
             VALUES (?, ?, ?, '', ?)`,
			string(e.recordType), e.code, e.name, now,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
