package fallback

import "math/rand"

// imageCollection holds curated portrait nature photos used when both the
// generative and stock image paths fail. All URLs are pre-cropped to the
// 720x1280 card aspect.
var imageCollection = []string{
	"https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?q=80&w=720&h=1280&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1507643179173-442727e34eac?q=80&w=720&h=1280&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1518173946687-a4c8892bbd9f?q=80&w=720&h=1280&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?q=80&w=720&h=1280&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?q=80&w=720&h=1280&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?q=80&w=720&h=1280&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1506744038136-46273834b3fb?q=80&w=720&h=1280&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1469474968028-56623f02e42e?q=80&w=720&h=1280&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1447752875215-b2761acb3c5d?q=80&w=720&h=1280&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1475924156734-496f6cac6ec1?q=80&w=720&h=1280&auto=format&fit=crop",
}

// RandomImage returns one of the static fallback image URLs.
func RandomImage() string {
	return imageCollection[rand.Intn(len(imageCollection))]
}
