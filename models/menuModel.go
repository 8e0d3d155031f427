package models

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// MenuItems is the static catalog shared by every session. Menu
// administration is out of scope, so the list is fixed at process start.
var MenuItems = []MenuItem{
	{ID: 1, Name: "Margherita Pizza", Price: 8.99, Description: "Klassische Pizza mit Tomaten und Mozzarella"},
	{ID: 2, Name: "Spaghetti Carbonara", Price: 10.99, Description: "Cremige Pasta mit Speck und Ei"},
	{ID: 3, Name: "Caesar Salad", Price: 7.99, Description: "Frischer Salat mit Croutons und Caesar-Dressing"},
}

func MenuItemByID(id int) (MenuItem, bool) {
	for _, item := range MenuItems {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}
