package seeder

import "strings"

// Column names in the wild lean on terse abbreviations. The decoder expands
// the common ones so the value generator can match on full words.
var abbreviations = map[string]string{
	"nm": "name", "dt": "date", "no": "number", "cd": "code",
	"desc": "description", "amt": "amount", "cnt": "count", "qty": "quantity",
	"addr": "address", "tel": "phone", "hp": "phone", "ph": "phone",
	"eml": "email", "pwd": "password", "passwd": "password", "pw": "password",
	"img": "image", "url": "url", "ip": "ip",
	"zip": "zipcode", "post": "zipcode",
	"msg": "message", "txt": "text", "tit": "title", "subj": "subject",
	"usr": "user", "emp": "employee", "dept": "department",
	"grp": "group", "cat": "category", "loc": "location",
	"lat": "latitude", "lng": "longitude", "lon": "longitude",
	"st": "street", "prov": "province", "dist": "district",
	"bal": "balance", "avg": "average", "uid": "id", "pid": "id",
	"reg": "registered", "mod": "modified", "del": "deleted", "cre": "created",
	"upd": "updated", "yn": "yesno", "yr": "year",
	"stat": "status", "sts": "status", "typ": "type", "val": "value",
	"ord": "order", "seq": "sequence", "idx": "index",
	"auth": "authority", "is": "yesno", "flg": "flag",
}

// analyzeMeaning expands abbreviated parts of a column name into a spaced
// phrase: cust_eml_addr becomes "cust email address". The value generator
// matches on the phrase, so eml_addr and email_address seed the same way.
func analyzeMeaning(colName string) string {
	parts := strings.Split(strings.ToLower(colName), "_")
	for i, part := range parts {
		if full, ok := abbreviations[part]; ok {
			parts[i] = full
		}
	}
	return strings.Join(parts, " ")
}
