package v1

// BasePath is the URL prefix of every version 1 route
const BasePath = "/specfem3dglobe"

// LoginPath is where unauthenticated browsers are sent
const LoginPath = BasePath + "/login"
