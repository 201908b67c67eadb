// Package sample provides a fixed 20-product catalog for offline mode and tests.
package sample

import "go-storefront/models"

// Products returns a fresh copy of the sample catalog
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

var products = []models.Product{
	{
		ID:          1,
		Title:       "Mochila Fjallraven Foldsack No. 1 para Laptop 15 Pulgadas",
		Price:       109.95,
		Description: "Tu mochila perfecta para uso diario y caminatas en el bosque. Guarda tu laptop (hasta 15 pulgadas) en el compartimento acolchado. Ideal para el día a día con múltiples bolsillos y diseño ergonómico.",
		Category:    models.CategoryMensClothing,
		Image:       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
		Rating:      models.Rating{Rate: 3.9, Count: 120},
	},
	{
		ID:          2,
		Title:       "Camisetas Premium Ajuste Slim para Hombre",
		Price:       22.3,
		Description: "Estilo ajustado, mangas largas tipo raglan con contraste, cuello henley de tres botones. Tela ligera y suave para mayor transpirabilidad y comodidad durante todo el día.",
		Category:    models.CategoryMensClothing,
		Image:       "https://fakestoreapi.com/img/71-3HjGNDUL._AC_SY879._SX._UX._SY._UY_.jpg",
		Rating:      models.Rating{Rate: 4.1, Count: 259},
	},
	{
		ID:          3,
		Title:       "Chaqueta de Algodón para Hombre",
		Price:       55.99,
		Description: "Excelente chaqueta exterior para primavera, otoño e invierno. Adecuada para muchas ocasiones como trabajo, senderismo, camping, escalada en montaña, ciclismo, viajes u otras actividades al aire libre.",
		Category:    models.CategoryMensClothing,
		Image:       "https://fakestoreapi.com/img/71li-ujtlUL._AC_UX679_.jpg",
		Rating:      models.Rating{Rate: 4.7, Count: 500},
	},
	{
		ID:          4,
		Title:       "Camisa Casual Ajuste Slim para Hombre",
		Price:       15.99,
		Description: "El color puede variar ligeramente entre la pantalla y el producto real. Ten en cuenta que las tallas pueden variar según la contextura de cada persona, por lo que se recomienda revisar la tabla de tallas detallada.",
		Category:    models.CategoryMensClothing,
		Image:       "https://fakestoreapi.com/img/71YXzeOuslL._AC_UY879_.jpg",
		Rating:      models.Rating{Rate: 2.1, Count: 430},
	},
	{
		ID:          5,
		Title:       "Pulsera John Hardy Legends Naga Dragón Oro y Plata para Mujer",
		Price:       695,
		Description: "De nuestra Colección Legends, la Naga fue inspirada por el mítico dragón de agua que protege la perla del océano. Úsala hacia adentro para recibir amor y abundancia, o hacia afuera para protección.",
		Category:    models.CategoryJewelery,
		Image:       "https://fakestoreapi.com/img/71pWzhdJNwL._AC_UL640_QL65_ML3_.jpg",
		Rating:      models.Rating{Rate: 4.6, Count: 400},
	},
	{
		ID:          6,
		Title:       "Anillo de Oro Macizo con Micropavé",
		Price:       168,
		Description: "Satisfacción garantizada. Devolución o cambio de cualquier pedido dentro de 30 días. Diseñado y vendido por Hafeez Center. Joyería de alta calidad con acabado impecable.",
		Category:    models.CategoryJewelery,
		Image:       "https://fakestoreapi.com/img/61sbMiUnoGL._AC_UL640_QL65_ML3_.jpg",
		Rating:      models.Rating{Rate: 3.9, Count: 70},
	},
	{
		ID:          7,
		Title:       "Anillo de Compromiso Solitario Bañado en Oro Blanco",
		Price:       9.99,
		Description: "Anillo clásico de compromiso con diamante solitario para ella. Regalo perfecto para consentir a tu amor en compromisos, bodas, aniversarios, día de San Valentín y ocasiones especiales.",
		Category:    models.CategoryJewelery,
		Image:       "https://fakestoreapi.com/img/71YAIFU48IL._AC_UL640_QL65_ML3_.jpg",
		Rating:      models.Rating{Rate: 3, Count: 400},
	},
	{
		ID:          8,
		Title:       "Aros Túnel de Acero Inoxidable Bañados en Oro Rosa",
		Price:       10.99,
		Description: "Aros tipo túnel con doble ensanchamiento bañados en oro rosa. Fabricados en acero inoxidable 316L de alta calidad. Diseño moderno y elegante.",
		Category:    models.CategoryJewelery,
		Image:       "https://fakestoreapi.com/img/51UDEzMJVpL._AC_UL640_QL65_ML3_.jpg",
		Rating:      models.Rating{Rate: 1.9, Count: 100},
	},
	{
		ID:          9,
		Title:       "Disco Duro Externo Portátil WD Elements 2TB USB 3.0",
		Price:       64,
		Description: "Compatibilidad USB 3.0 y USB 2.0. Transferencias rápidas de datos. Mejora el rendimiento de tu PC. Alta capacidad de almacenamiento. Formateado NTFS para Windows 10, 8.1 y 7. Puede requerir reformateo para otros sistemas operativos.",
		Category:    models.CategoryElectronics,
		Image:       "https://fakestoreapi.com/img/61IBBVJvSDL._AC_SY879_.jpg",
		Rating:      models.Rating{Rate: 3.3, Count: 203},
	},
	{
		ID:          10,
		Title:       "SSD Interno SanDisk PLUS 1TB SATA III 6 Gb/s",
		Price:       109,
		Description: "Actualización fácil para un arranque, apagado, carga de aplicaciones y respuesta más rápidos. Comparado con discos duros SATA de 2.5 pulgadas a 5400 RPM. Basado en especificaciones publicadas y pruebas internas.",
		Category:    models.CategoryElectronics,
		Image:       "https://fakestoreapi.com/img/61U7T1koQqL._AC_SX679_.jpg",
		Rating:      models.Rating{Rate: 2.9, Count: 470},
	},
	{
		ID:          11,
		Title:       "SSD Silicon Power 256GB 3D NAND A55 SATA III 2.5",
		Price:       109,
		Description: "Tecnología 3D NAND flash para ofrecer altas velocidades de transferencia. Velocidades notables que permiten un arranque más rápido y un mejor rendimiento general del sistema.",
		Category:    models.CategoryElectronics,
		Image:       "https://fakestoreapi.com/img/71kWymZ+c+L._AC_SX679_.jpg",
		Rating:      models.Rating{Rate: 4.8, Count: 319},
	},
	{
		ID:          12,
		Title:       "Disco Duro Externo WD 4TB para Gaming PlayStation 4",
		Price:       114,
		Description: "Expande tu experiencia de juego en PS4. Juega en cualquier lugar. Configuración rápida y fácil. Diseño elegante con alta capacidad. Garantía limitada del fabricante de 3 años.",
		Category:    models.CategoryElectronics,
		Image:       "https://fakestoreapi.com/img/61mtL65D4cL._AC_SX679_.jpg",
		Rating:      models.Rating{Rate: 4.8, Count: 400},
	},
	{
		ID:          13,
		Title:       "Monitor Acer SB220Q 21.5 Pulgadas Full HD IPS Ultra Delgado",
		Price:       599,
		Description: "Pantalla IPS Full HD de 21.5 pulgadas (1920 x 1080) con tecnología Radeon FreeSync. Tasa de refresco de 75Hz por puerto HDMI. Diseño sin marco ultra delgado. Tiempo de respuesta de 4ms. Panel IPS. Relación de aspecto 16:9. Soporte para 16.7 millones de colores. Brillo de 250 nits. Ángulo de inclinación de -5 a 15 grados. Ángulos de visión horizontal y vertical de 178 grados.",
		Category:    models.CategoryElectronics,
		Image:       "https://fakestoreapi.com/img/81QpkIctqPL._AC_SX679_.jpg",
		Rating:      models.Rating{Rate: 2.9, Count: 250},
	},
	{
		ID:          14,
		Title:       "Monitor Gamer Samsung Curvo 49 Pulgadas CHG90 144Hz QLED Ultra Ancho",
		Price:       999.99,
		Description: "Monitor gamer super ultra ancho de 49 pulgadas curvo 32:9 equivalente a dos pantallas de 27 pulgadas lado a lado. Tecnología QUANTUM DOT (QLED), soporte HDR y calibración de fábrica que proporciona colores y contraste increíblemente realistas y precisos. Tasa de refresco alta de 144Hz y tiempo de respuesta ultra rápido de 1ms que eliminan el desenfoque de movimiento y reducen el retraso de entrada.",
		Category:    models.CategoryElectronics,
		Image:       "https://fakestoreapi.com/img/81Zt42ioCgL._AC_SX679_.jpg",
		Rating:      models.Rating{Rate: 2.2, Count: 140},
	},
	{
		ID:          15,
		Title:       "Chaqueta de Invierno 3 en 1 para Mujer Snowboard",
		Price:       56.99,
		Description: "Nota: La chaqueta es talla estándar, elige tu talla habitual. Material: 100% Poliéster. Forro desmontable de polar cálido. Forro funcional desmontable amigable con la piel, liviano y cálido. Chaqueta con cuello alto te mantiene abrigada en clima frío. Bolsillos con cierre: 2 bolsillos de mano, 2 bolsillos en el pecho y 1 bolsillo oculto interno. Diseño humanizado: capucha ajustable y desmontable, puños ajustables para prevenir viento y agua. Diseño 3 en 1 desmontable brinda más conveniencia, puedes separar el abrigo y el forro según necesites. Adecuada para diferentes estaciones.",
		Category:    models.CategoryWomensClothing,
		Image:       "https://fakestoreapi.com/img/51Y5NI-I5jL._AC_UX679_.jpg",
		Rating:      models.Rating{Rate: 2.6, Count: 235},
	},
	{
		ID:          16,
		Title:       "Chaqueta Moto de Cuero Sintético con Capucha para Mujer",
		Price:       29.95,
		Description: "100% POLIURETANO (exterior) 100% POLIÉSTER (forro) 75% POLIÉSTER 25% ALGODÓN (suéter). Material de cuero sintético para estilo y comodidad. 2 bolsillos frontales. Chaqueta estilo mezclilla con capucha 2 en 1. Detalle de botones en la cintura. Costuras detalladas en los lados. LAVAR SOLO A MANO / NO USAR CLORO / SECAR AL AIRE / NO PLANCHAR.",
		Category:    models.CategoryWomensClothing,
		Image:       "https://fakestoreapi.com/img/81XH0e8fefL._AC_UY879_.jpg",
		Rating:      models.Rating{Rate: 2.9, Count: 340},
	},
	{
		ID:          17,
		Title:       "Chaqueta Impermeable Cortaviento a Rayas para Mujer",
		Price:       39.99,
		Description: "Liviana, perfecta para viajes o uso casual. Manga larga con capucha, diseño de cintura ajustable con cordón. Cierre frontal con botones y cremallera. Completamente forrada a rayas. Tiene 2 bolsillos laterales de buen tamaño para guardar todo tipo de cosas. Cubre las caderas y la capucha es generosa sin exagerar. Capucha forrada en algodón con cordones ajustables le dan un aspecto realmente elegante.",
		Category:    models.CategoryWomensClothing,
		Image:       "https://fakestoreapi.com/img/71HblAHs5xL._AC_UY879_-2.jpg",
		Rating:      models.Rating{Rate: 3.8, Count: 679},
	},
	{
		ID:          18,
		Title:       "Blusa de Manga Corta Cuello Barco para Mujer",
		Price:       9.85,
		Description: "95% RAYÓN 5% SPANDEX. Hecho en USA o importado. No usar cloro. Tela liviana con gran elasticidad para mayor comodidad. Acanalado en mangas y cuello. Doble costura en el dobladillo inferior. Perfecta para uso diario.",
		Category:    models.CategoryWomensClothing,
		Image:       "https://fakestoreapi.com/img/71z3kpMAYsL._AC_UY879_.jpg",
		Rating:      models.Rating{Rate: 4.7, Count: 130},
	},
	{
		ID:          19,
		Title:       "Polera Deportiva Manga Corta Absorbe Humedad para Mujer",
		Price:       7.95,
		Description: "100% Poliéster. Lavable a máquina. Poliéster catiónico 100% interlock. Preencogida para un gran ajuste. Liviana, holgada y altamente transpirable con tela que absorbe la humedad. Tela suave y liviana con cuello en V cómodo y ajuste más delgado. Ofrece una silueta elegante y más femenina con comodidad adicional.",
		Category:    models.CategoryWomensClothing,
		Image:       "https://fakestoreapi.com/img/51eg55uWmdL._AC_UX679_.jpg",
		Rating:      models.Rating{Rate: 4.5, Count: 146},
	},
	{
		ID:          20,
		Title:       "Polera Casual de Algodón Manga Corta para Mujer",
		Price:       12.99,
		Description: "95% Algodón, 5% Spandex. Características: Casual, manga corta, estampado de letras, cuello en V, poleras de moda. La tela es suave y tiene algo de elasticidad. Ocasión: Casual, oficina, playa, escuela, hogar, calle. Temporada: Primavera, verano, otoño, invierno.",
		Category:    models.CategoryWomensClothing,
		Image:       "https://fakestoreapi.com/img/61pHAEJ4NML._AC_UX679_.jpg",
		Rating:      models.Rating{Rate: 3.6, Count: 145},
	},
}
