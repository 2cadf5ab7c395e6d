package store

const (
	createUser = `INSERT INTO users (user_id, name, email, secret_hash, interests)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, name, email, secret_hash, interests, created_at;`

	findUserByEmail = `SELECT user_id, name, email, secret_hash, interests, created_at
    FROM users
    WHERE email = $1;`

	createScheme = `INSERT INTO schemes (title, description, category, eligibility, benefits, link, created_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING scheme_id, title, description, category, eligibility, benefits, link, created_by, created_at;`

	getScheme = `SELECT scheme_id, title, description, category, eligibility, benefits, link, created_by, created_at
    FROM schemes
    WHERE scheme_id = $1;`

	updateScheme = `UPDATE schemes
    SET title = $2, description = $3, category = $4, eligibility = $5, benefits = $6, link = $7
    WHERE scheme_id = $1
    RETURNING scheme_id, title, description, category, eligibility, benefits, link, created_by, created_at;`

	deleteScheme = `DELETE FROM schemes
    WHERE scheme_id = $1;`
)
