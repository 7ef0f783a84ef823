package mysql

// -----------------------------------------------------------------------------
// CATALOG WRITES (ingestor only)
// -----------------------------------------------------------------------------

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, description, address, city, country, image_url, rating, amenities)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name        = VALUES(name),
  description = VALUES(description),
  address     = VALUES(address),
  city        = VALUES(city),
  country     = VALUES(country),
  image_url   = VALUES(image_url),
  rating      = VALUES(rating),
  amenities   = VALUES(amenities),
  updated_at  = CURRENT_TIMESTAMP
`

const upsertRoomsPrefix = "INSERT INTO rooms\n  (id, hotel_id, name, description, `type`, capacity, price_per_night, image_url, amenities, is_available)\nVALUES "

// Note: `type` is reserved; keep it quoted everywhere.
const upsertRoomsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  hotel_id        = VALUES(hotel_id),\n" +
	"  name            = VALUES(name),\n" +
	"  description     = VALUES(description),\n" +
	"  `type`          = VALUES(`type`),\n" +
	"  capacity        = VALUES(capacity),\n" +
	"  price_per_night = VALUES(price_per_night),\n" +
	"  image_url       = VALUES(image_url),\n" +
	"  amenities       = VALUES(amenities),\n" +
	"  is_available    = VALUES(is_available),\n" +
	"  updated_at      = CURRENT_TIMESTAMP\n"

// -----------------------------------------------------------------------------
// BOOKINGS
// -----------------------------------------------------------------------------

const insertBookingSQL = `
INSERT INTO bookings
  (id, user_id, hotel_id, room_id, check_in_date, check_out_date, guests, total_price, special_requests, status)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const getBookingCreatedAtSQL = `SELECT created_at FROM bookings WHERE id = ?`

// -----------------------------------------------------------------------------
// PROFILES
// -----------------------------------------------------------------------------

const getProfileSQL = `SELECT full_name, phone, avatar_url FROM profiles WHERE user_id = ?`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const listHotelsSQL = `
SELECT id, name, description, address, city, country, image_url, rating, amenities
FROM hotels
ORDER BY rating DESC, id
`

const listRoomsSQL = "SELECT id, hotel_id, name, description, `type`, capacity, price_per_night, image_url, amenities, is_available\n" +
	"FROM rooms\n" +
	"WHERE hotel_id = ?\n" +
	"ORDER BY price_per_night ASC, id\n"

// Bookings of one user joined with the hotel and room display fields.
const listBookingsSQL = "SELECT\n" +
	"  b.id, b.user_id, b.hotel_id, b.room_id,\n" +
	"  b.check_in_date, b.check_out_date, b.guests, b.total_price,\n" +
	"  b.special_requests, b.status, b.created_at,\n" +
	"  h.name, h.address, h.city, h.country, h.image_url,\n" +
	"  r.name, r.`type`, r.image_url\n" +
	"FROM bookings b\n" +
	"JOIN hotels h ON h.id = b.hotel_id\n" +
	"JOIN rooms r ON r.id = b.room_id\n" +
	"WHERE b.user_id = ?\n" +
	"ORDER BY b.created_at DESC, b.id DESC\n"
