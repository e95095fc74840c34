package domain

// pageBounds computes the effective page number, the last valid page and the
// row offset for a listing of total rows. An empty result set still has one
// (empty) page, and a requested page past the end is clamped to the last
// page rather than rejected.
func pageBounds(total int64, pageNumber, pageSize int) (page, lastPage, offset int) {
	lastPage = 1
	if total > 0 {
		lastPage = int((total-1)/int64(pageSize)) + 1
	}

	page = pageNumber
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	return page, lastPage, (page - 1) * pageSize
}
