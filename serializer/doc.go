// Package serializer turns typed Go values into JSON through reusable,
// composable serializers. A type can have any number of serializers, each
// selecting its own fields, renaming keys, and delegating to other
// serializers for nested values.
//
// A serializer is anything with the shape func(T, *Builder); no named type
// is required:
//
//	func serializeUser(u User, b *serializer.Builder) {
//		b.Attr("id", u.ID)
//		b.Attr("name", u.Name)
//		serializer.HasOne(b, "country", u.Country, serializer.Func[Country](serializeCountry))
//		serializer.HasMany(b, "friends", u.Friends, serializer.Func[User](serializeUser))
//	}
//
//	json, err := serializer.Serialize(serializer.Func[User](serializeUser), bob)
//
// Serializers are stateless and may be shared freely; every call gets a
// fresh Builder. There is no cycle guard: a serializer wired through a
// genuinely cyclic object graph recurses until the stack is exhausted.
package serializer
