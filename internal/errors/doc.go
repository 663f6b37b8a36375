// Package errors provides structured, actionable error messages for the
// toaster.
//
// Every error carries a code (e.g. "T001") that maps to a category, a short
// message, a longer explanation, and a documentation link. Builders attach a
// fix suggestion or a code example:
//
//	err := errors.New("T001").
//	    WithSuggestion("Call toaster.Provide(ctx, toaster.New()) at startup")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR T001: Toaster not provided
//	//
//	//   No toaster registry was installed in this context.
//	//
//	//   Hint: Call toaster.Provide(ctx, toaster.New()) at startup
//
// Errors compare by code, so errors.Is(err, errors.New("T001")) holds for
// any T001 regardless of attached detail.
package errors
