package handlers

import "github.com/labstack/echo/v4"

// Routes mounts the API under api, which must already run ResolvePrincipal.
// Registration and login are the only unguarded endpoints.
func Routes(api *echo.Group, users UserService, contacts ContactService, addresses AddressService) {
	api.POST("/users", RegisterUser(users))
	api.POST("/users/login", LoginUser(users))

	guarded := api.Group("", RequirePrincipal())
	guarded.GET("/users/current", CurrentUser(users))
	guarded.PATCH("/users/current", UpdateUser(users))
	guarded.DELETE("/users/current", LogoutUser(users))

	guarded.POST("/contacts", CreateContact(contacts))
	guarded.GET("/contacts", SearchContacts(contacts))
	guarded.GET("/contacts/:contactId", GetContact(contacts))
	guarded.PUT("/contacts/:contactId", UpdateContact(contacts))
	guarded.DELETE("/contacts/:contactId", RemoveContact(contacts))

	guarded.POST("/contacts/:contactId/addresses", CreateAddress(addresses))
	guarded.GET("/contacts/:contactId/addresses", ListAddresses(addresses))
	guarded.GET("/contacts/:contactId/addresses/:addressId", GetAddress(addresses))
	guarded.PUT("/contacts/:contactId/addresses/:addressId", UpdateAddress(addresses))
	guarded.DELETE("/contacts/:contactId/addresses/:addressId", RemoveAddress(addresses))
}
