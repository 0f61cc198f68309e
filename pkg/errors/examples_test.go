package errors_test

import (
	"fmt"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := errors.NewNotFoundError("profile", "1b2c")

	if errors.IsNotFound(err) {
		fmt.Println("Profile not found")
	}

	// Output: Profile not found
}

// Example_rejection shows how a caller reports a rejected roster change.
func Example_rejection() {
	var err error = errors.NewRejectionError(errors.ReasonGoalkeeperLimit, 101, 3)

	if reason, ok := errors.RejectionReason(err); ok {
		fmt.Println(reason)
		fmt.Println(err)
	}

	// Output:
	// GOALKEEPER_LIMIT
	// Maximum 3 goalkeepers allowed!
}

// Example_catalogFailure shows the per-team error collected during an import.
func Example_catalogFailure() {
	err := errors.WrapCatalog("japan", "", fmt.Errorf("status 404"))

	if errors.IsCatalogUnavailable(err) {
		fmt.Println(err)
	}

	// Output: catalog error for japan: status 404
}
