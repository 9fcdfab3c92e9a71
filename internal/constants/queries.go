package constants

// Raw SQL used outside the ORM.
const (
	AlertCountsByCategory = `SELECT category, COUNT(*) AS total
FROM alert_events
GROUP BY category
ORDER BY total DESC`
)
