package chain

// contractABIJSON is the ABI of the product-authenticity contract. The
// contract itself is an external collaborator; method and field names follow
// its deployed interface verbatim, including the "vender" spelling.
const contractABIJSON = `[
  {
    "name": "isVendorRegister",
    "type": "function",
    "stateMutability": "view",
    "inputs": [{"name": "vender", "type": "address"}],
    "outputs": [{"name": "", "type": "bool"}]
  },
  {
    "name": "TotalProducts",
    "type": "function",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "name": "TotalVenders",
    "type": "function",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "name": "totalProductsOfVender",
    "type": "function",
    "stateMutability": "view",
    "inputs": [{"name": "vender", "type": "address"}],
    "outputs": [
      {
        "name": "",
        "type": "tuple[]",
        "components": [
          {"name": "productId", "type": "uint256"},
          {"name": "productName", "type": "string"},
          {"name": "description", "type": "string"},
          {"name": "price", "type": "uint256"},
          {"name": "stock", "type": "uint256"},
          {"name": "category", "type": "string"},
          {"name": "productCode", "type": "string"}
        ]
      }
    ]
  },
  {
    "name": "totalVenderDetails",
    "type": "function",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [
      {
        "name": "",
        "type": "tuple[]",
        "components": [
          {"name": "name", "type": "string"},
          {"name": "companyName", "type": "string"},
          {"name": "venderNumber", "type": "uint256"},
          {"name": "venderEmail", "type": "string"},
          {"name": "companyAddress", "type": "string"},
          {"name": "vendorAddress", "type": "address"}
        ]
      }
    ]
  },
  {
    "name": "getProductAndVendorByCode",
    "type": "function",
    "stateMutability": "view",
    "inputs": [{"name": "code", "type": "string"}],
    "outputs": [
      {
        "name": "product",
        "type": "tuple",
        "components": [
          {"name": "productId", "type": "uint256"},
          {"name": "productName", "type": "string"},
          {"name": "description", "type": "string"},
          {"name": "price", "type": "uint256"},
          {"name": "stock", "type": "uint256"},
          {"name": "category", "type": "string"},
          {"name": "productCode", "type": "string"}
        ]
      },
      {
        "name": "vendor",
        "type": "tuple",
        "components": [
          {"name": "name", "type": "string"},
          {"name": "companyName", "type": "string"},
          {"name": "venderNumber", "type": "uint256"},
          {"name": "venderEmail", "type": "string"},
          {"name": "companyAddress", "type": "string"},
          {"name": "vendorAddress", "type": "address"}
        ]
      }
    ]
  },
  {
    "name": "registerVendor",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "name", "type": "string"},
      {"name": "companyName", "type": "string"},
      {"name": "number", "type": "uint256"},
      {"name": "email", "type": "string"},
      {"name": "companyAddress", "type": "string"}
    ],
    "outputs": []
  },
  {
    "name": "addProduct",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "name", "type": "string"},
      {"name": "description", "type": "string"},
      {"name": "price", "type": "uint256"},
      {"name": "stock", "type": "uint256"},
      {"name": "category", "type": "string"}
    ],
    "outputs": []
  }
]`
