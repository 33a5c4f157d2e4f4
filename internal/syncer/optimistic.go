// ABOUTME: Generic three-phase optimistic mutation helper
// ABOUTME: Apply tentative local change, attempt remote, commit or revert

package syncer

// Optimistic applies a tentative local change, attempts the remote
// operation, then commits the server result or reverts the local change.
// The local view is never left holding an unconfirmed mutation after an
// error: revert runs before the error is returned.
func Optimistic[T any](apply func(), attempt func() (T, error), commit func(T), revert func()) (T, error) {
	apply()
	result, err := attempt()
	if err != nil {
		revert()
		var zero T
		return zero, err
	}
	commit(result)
	return result, nil
}
