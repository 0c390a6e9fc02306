// Package either provides Either[L, R], a value that is exactly one of
// Left(L) or Right(R).
//
// By convention Left carries a failure or an absent value and Right carries
// a success. Map and Chain only touch Right values; a Left passes through
// untouched until Fold supplies handlers for both sides. This turns nil
// checks and error branches into a linear pipeline:
//
//	name := either.Fold(
//	    either.Map(
//	        either.Chain(either.FromPtr(user.Address), streetOf),
//	        func(s Street) string { return s.Name }),
//	    func(error) string { return "no street" },
//	    func(n string) string { return n },
//	)
//
// Key operations:
// - Left/Right: construct an Either
// - FromNullable/FromPtr/FromOK: lift possibly absent values
// - TryCatch/Attempt: lift a failing or panicking computation
// - Map/Chain/Try/Validate: compose on the Right side, short-circuit on Left
// - MapLeft/Swap/Tee/Or/And: helpers around the two sides
// - Fold/GetOrElse/ToValues: leave the Either
package either
