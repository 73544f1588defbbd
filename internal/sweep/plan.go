package sweep

import (
	"context"
	"net/url"
	"strings"
)

// facilityKind is a booking category keyed by borrower and facility.
type facilityKind struct {
	label string
	base  string
}

var facilityKinds = []facilityKind{
	{label: "Dapur", base: "/api/v1/dapur"},
	{label: "Mesin Cuci Cewe", base: "/api/v1/mesin-cuci-cewe"},
	{label: "Mesin Cuci Cowo", base: "/api/v1/mesin-cuci-cowo"},
}

func (s *Sweeper) dateQuery() url.Values {
	return url.Values{"date": {s.Plan.SampleDate}}
}

func (s *Sweeper) users(ctx context.Context) {
	const base = "/api/v1/users"
	item := firstItem(s.get(ctx, "Users List", base, nil, ""))

	s.userID = field(item, "id")
	id, note := orFallback(s.userID, fallbackID, "ID")
	s.get(ctx, "User Detail", join(base, id), nil, note)

	angkatan, note := orFallback(field(item, "idAngkatan", "angkatan.id"), fallbackID, "angkatanId")
	s.get(ctx, "Users By Angkatan", join(base, "angkatan", angkatan), nil, note)

	wa, note := orFallback(field(item, "nomorWa"), fallbackWA, "nomorWa")
	// '+' is legal in a path but the API decodes it as a space.
	s.get(ctx, "User By WhatsApp", join(base, "wa")+"/"+strings.ReplaceAll(segment(wa), "+", "%2B"), nil, note)
}

func (s *Sweeper) communal(ctx context.Context) {
	const base = "/api/v1/communal"
	item := firstItem(s.get(ctx, "Communal List", base, nil, ""))

	id, note := orFallback(field(item, "id"), fallbackID, "ID")
	s.get(ctx, "Communal Detail", join(base, id), nil, note)

	pj, note := orFallback(field(item, "idPenanggungJawab"), s.userOr1(), "idPenanggungJawab")
	s.get(ctx, "Communal By Penanggung Jawab", join(base, "penanggung-jawab", pj), nil, note)

	lantai, note := orFallback(field(item, "lantai"), fallbackID, "lantai")
	s.get(ctx, "Communal By Lantai", join(base, "lantai", lantai), nil, note)
	s.get(ctx, "Communal Available Slots", join(base, "available-slots", s.Plan.SampleDate, lantai), nil, note)
	s.get(ctx, "Communal Time Slots", join(base, "time-slots"), s.dateQuery(), "")
}

func (s *Sweeper) serbaguna(ctx context.Context) {
	const base = "/api/v1/serbaguna"
	item := firstItem(s.get(ctx, "Serbaguna List", base, nil, ""))

	id, note := orFallback(field(item, "id"), fallbackID, "ID")
	s.get(ctx, "Serbaguna Detail", join(base, id), nil, note)

	pj, note := orFallback(field(item, "idPenanggungJawab"), s.userOr1(), "idPenanggungJawab")
	s.get(ctx, "Serbaguna By Penanggung Jawab", join(base, "penanggung-jawab", pj), nil, note)

	area, areaNote := orFallback(field(item, "idArea"), fallbackID, "idArea")
	s.get(ctx, "Serbaguna By Area", join(base, "area", area), nil, areaNote)
	s.get(ctx, "Serbaguna Areas", join(base, "areas"), nil, "")
	s.get(ctx, "Serbaguna Time Slots", join(base, "time-slots"),
		url.Values{"date": {s.Plan.SampleDate}, "areaId": {area}}, areaNote)
	s.get(ctx, "Serbaguna Available Slots", join(base, "available-slots", s.Plan.SampleDate, area), nil, areaNote)
}

func (s *Sweeper) facilityBooking(ctx context.Context, k facilityKind) {
	item := firstItem(s.get(ctx, k.label+" List", k.base, nil, ""))

	id, note := orFallback(field(item, "id"), fallbackID, "ID")
	s.get(ctx, k.label+" Detail", join(k.base, id), nil, note)

	borrower, note := orFallback(field(item, "idPeminjam"), s.userOr1(), "idPeminjam")
	s.get(ctx, k.label+" By Peminjam", join(k.base, "peminjam", borrower), nil, note)

	facility, facilityNote := orFallback(field(item, "idFasilitas"), fallbackID, "idFasilitas")
	s.get(ctx, k.label+" By Fasilitas", join(k.base, "fasilitas", facility), nil, facilityNote)
	s.get(ctx, k.label+" Facilities", join(k.base, "facilities"), nil, "")
	s.get(ctx, k.label+" By Time Range", join(k.base, "time-range"),
		url.Values{"startTime": {s.Plan.SampleStart}, "endTime": {s.Plan.SampleEnd}}, "")
	s.get(ctx, k.label+" Time Slots", join(k.base, "time-slots"),
		url.Values{"date": {s.Plan.SampleDate}, "facilityId": {facility}}, facilityNote)
}

func (s *Sweeper) cws(ctx context.Context) {
	const base = "/api/v1/cws"
	item := firstItem(s.get(ctx, "CWS List", base, nil, ""))

	id, note := orFallback(field(item, "id"), fallbackID, "ID")
	s.get(ctx, "CWS Detail", join(base, id), nil, note)

	pj, note := orFallback(field(item, "idPenanggungJawab"), s.userOr1(), "idPenanggungJawab")
	s.get(ctx, "CWS By Penanggung Jawab", join(base, "penanggung-jawab", pj), nil, note)

	s.get(ctx, "CWS By Date", join(base, "date", s.Plan.SampleDate), nil, "")
	s.get(ctx, "CWS Time Slots", join(base, "time-slots"), s.dateQuery(), "")
	s.get(ctx, "CWS Time Suggestions", join(base, "time-suggestions"), s.dateQuery(), "")
}
